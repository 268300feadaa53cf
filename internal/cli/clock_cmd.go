package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workcounter/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "in",
		Aliases: []string{"clock-in"},
		Short:   "Clock in",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			event, err := app.Clock.ClockIn(ctx)
			if err != nil {
				return reportClockError(cmd, app, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.CheckInLabel(&event.Time, app.Config.TimeFormat))
			return nil
		},
	}
}

func newOutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "out",
		Aliases: []string{"clock-out"},
		Short:   "Clock out and add the session to the total",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Clock.ClockOut(cmd.Context())
			if err != nil {
				return reportClockError(cmd, app, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.SessionSummary(session, app.Config.TimeFormat))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the clock state, running timer and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStatus(cmd, app)
		},
	}
}

func printStatus(cmd *cobra.Command, app *App) error {
	st, err := app.Clock.Status(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderStatus(formatter.StatusView{
		State:       st.State,
		ClockInTime: st.ClockInTime,
		Elapsed:     st.Elapsed,
		TotalWorked: st.TotalWorked,
		Required:    app.required(),
		Layout:      app.Config.TimeFormat,
	}))
	return nil
}

func newExitCmd(app *App) *cobra.Command {
	var required time.Duration

	cmd := &cobra.Command{
		Use:   "exit",
		Short: "Calculate when the required work time is reached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("required") {
				required = app.required()
			}
			if required <= 0 {
				return fmt.Errorf("--required must be positive")
			}
			p, err := app.Clock.ProjectExit(cmd.Context(), required)
			if err != nil {
				return reportClockError(cmd, app, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.ProjectionSummary(p, app.Config.TimeFormat))
			return nil
		},
	}

	cmd.Flags().DurationVar(&required, "required", 0, "Required work time (default from config, 8h30m)")
	return cmd
}

func newLogCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List clock-in and clock-out events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("limit") {
				limit = app.Config.LogLimit
			}

			st, err := app.Clock.Status(ctx)
			if err != nil {
				return err
			}
			events, err := app.Clock.Events(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No clock events yet.")
				return nil
			}

			offset := st.EventCount - len(events)
			table := formatter.RenderEventTable(events, offset, app.Config.TimeFormat, app.now())
			fmt.Fprintln(out, formatter.RenderBox("Log", table))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the most recent N events (0 for all)")
	return cmd
}

// reportClockError prints expected clock errors as status text and returns
// anything else.
func reportClockError(cmd *cobra.Command, app *App, err error) error {
	msg, ok := userMessage(cmd.Context(), app, err)
	if !ok {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}
