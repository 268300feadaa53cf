package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/workcounter/internal/config"
	"github.com/alexanderramin/workcounter/internal/domain"
	"github.com/alexanderramin/workcounter/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Clock    service.ClockService
	Transfer service.TransferService
	Config   config.Config

	// Connect wires the services once flags are parsed. It is nil when the
	// services are provided up front, as in tests.
	Connect func(ctx context.Context, app *App) (io.Closer, error)

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// Now is the time source for display; defaults to time.Now.
	Now func() time.Time

	closer io.Closer
}

// Close releases whatever Connect opened. It is safe to call more than once.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) required() time.Duration {
	if a.Config.Required.Duration > 0 {
		return a.Config.Required.Duration
	}
	return domain.DefaultRequired
}

// bindGlobalFlags registers flags shared by every subcommand.
func bindGlobalFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the workcounter database")
	fs.StringVar(&cfg.TimeFormat, "time-format", cfg.TimeFormat, "Go time layout used to print clock times")
}

// NewRootCmd creates the top-level "workcounter" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "workcounter",
		Short:         "Clock in, clock out, and see when you can leave",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Connect == nil || app.Clock != nil {
				return nil
			}
			if err := app.Config.Validate(); err != nil {
				return err
			}
			closer, err := app.Connect(cmd.Context(), app)
			if err != nil {
				return fmt.Errorf("opening store: %w", err)
			}
			app.closer = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd, app)
			}
			return printStatus(cmd, app)
		},
	}

	bindGlobalFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newInCmd(app),
		newOutCmd(app),
		newStatusCmd(app),
		newExitCmd(app),
		newLogCmd(app),
		newWatchCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}
