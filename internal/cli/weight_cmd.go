package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/cli/formatter"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/spf13/cobra"
)

func newWeightCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weight",
		Short: "Log and review weigh-ins",
	}

	cmd.AddCommand(
		newWeightLogCmd(a),
		newWeightListCmd(a),
		newWeightRemoveCmd(a),
	)

	return cmd
}

func newWeightLogCmd(a *App) *cobra.Command {
	var date, note string
	var updateProfile bool

	cmd := &cobra.Command{
		Use:   "log WEIGHT",
		Short: "Log a weigh-in (replaces any entry for the same date)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q", args[0])
			}
			day, err := parseDateArg(date, a.today())
			if err != nil {
				return err
			}

			err = a.Weights.LogWeight(context.Background(), app.LogWeightRequest{
				Entry: &domain.WeightEntry{
					UserID: a.DefaultUser,
					Date:   day,
					Weight: w,
					Note:   note,
				},
				UpdateProfile: updateProfile,
				Today:         a.today(),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.1f for %s\n", w, day.Format(domain.DateLayout))
			if updateProfile {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Profile weight updated; targets now start from this weigh-in."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today, yesterday, or -N days)")
	cmd.Flags().StringVar(&note, "note", "", "Note")
	cmd.Flags().BoolVar(&updateProfile, "update-profile", false, "Also set the profile's current weight")

	return cmd
}

func newWeightListCmd(a *App) *cobra.Command {
	var last int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List weigh-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			entries, err := a.Weights.List(ctx, a.DefaultUser)
			if err != nil {
				return err
			}
			if last > 0 && len(entries) > last {
				entries = entries[len(entries)-last:]
			}

			unit := domain.UnitPounds
			if p, err := a.Profiles.Get(ctx, a.DefaultUser); err == nil {
				unit = p.Unit
			} else if !errors.Is(err, domain.ErrNotFound) {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Weigh-ins", formatter.FormatWeightLog(entries, unit)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVar(&last, "last", 0, "Show only the last N weigh-ins")

	return cmd
}

func newWeightRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove DATE",
		Short: "Remove the weigh-in for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateArg(args[0], a.today())
			if err != nil {
				return err
			}
			if err := a.Weights.Delete(context.Background(), a.DefaultUser, day); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed weigh-in for %s\n", day.Format(domain.DateLayout))
			return nil
		},
	}
}
