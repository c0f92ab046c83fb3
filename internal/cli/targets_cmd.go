package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTargetsCmd(a *App) *cobra.Command {
	var date string
	var noAdjust bool

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Show the day's calorie, macro, fiber and sodium targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := a.today()
			day, err := parseDateArg(date, today)
			if err != nil {
				return err
			}
			view, err := a.Day.Day(context.Background(), app.TargetsRequest{
				UserID:         a.DefaultUser,
				Date:           day,
				SkipAdjustment: noAdjust,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Targets", formatter.FormatTargets(view, today)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today, yesterday, or -N days)")
	cmd.Flags().BoolVar(&noAdjust, "no-adjust", false, "Show baseline targets without progress adjustment")

	return cmd
}

func newTrajectoryCmd(a *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "trajectory",
		Short: "Allowed weight per day next to logged weigh-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.TrajectoryRequest{UserID: a.DefaultUser}
			var err error
			if from != "" {
				if req.From, err = parseDateArg(from, a.today()); err != nil {
					return err
				}
			}
			if to != "" {
				if req.To, err = parseDateArg(to, a.today()); err != nil {
					return err
				}
			}

			resp, err := a.Progress.Trajectory(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Trajectory", formatter.FormatTrajectory(resp)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First date (default: profile start date)")
	cmd.Flags().StringVar(&to, "to", "", "Last date (default: target date)")

	return cmd
}

func newProgressCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Weight trend and predicted weight on goal day",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Progress.Progress(context.Background(), app.ProgressRequest{UserID: a.DefaultUser, Now: a.today()})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Progress", formatter.FormatProgress(resp)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
