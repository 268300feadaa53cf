package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/workcounter/internal/domain"
	"github.com/spf13/cobra"
)

var errImportAborted = errors.New("import aborted")

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored state with a workcounter.json store file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			hasData, err := app.Transfer.HasData(ctx)
			if err != nil {
				return err
			}
			if hasData && !yes {
				if !app.interactive() {
					return fmt.Errorf("existing data would be replaced; rerun with --yes")
				}
				confirmed := false
				form := confirmForm("Replace existing data?",
					"The current clock state, log and total will be overwritten.", &confirmed)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					return errImportAborted
				}
			}

			res, err := app.Transfer.Import(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d events from %s\n", res.EventCount, args[0])
			fmt.Fprintf(out, "Total worked time: %s\n", domain.FormatInterval(res.TotalWorked))
			if res.State == domain.StateClockedIn {
				fmt.Fprintln(out, "Session is open.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Replace existing data without asking")
	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write the stored state as a JSON store file, or a timesheet for .xlsx",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Transfer.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d events to %s\n", n, args[0])
			return nil
		},
	}
}
