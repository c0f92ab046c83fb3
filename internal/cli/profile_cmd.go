package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/weighin/internal/cli/formatter"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your body and goal settings",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileSetupCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(context.Background(), app.DefaultUser)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Profile", formatter.FormatProfile(p)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

// existingOrNewProfile loads the user's profile, or starts an empty one.
func existingOrNewProfile(ctx context.Context, app *App) (*domain.Profile, error) {
	p, err := app.Profiles.Get(ctx, app.DefaultUser)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Profile{UserID: app.DefaultUser}, nil
	}
	return p, err
}

func newProfileSetCmd(app *App) *cobra.Command {
	var (
		weight, target, height, bodyFat, fatRatio float64
		targetDate, activity, unit                string
		days                                      int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update the profile; saving restarts the trajectory today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			today := app.today()

			p, err := existingOrNewProfile(ctx, app)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("weight") {
				p.CurrentWeight = weight
			}
			if flags.Changed("target") {
				p.TargetWeight = target
			}
			if flags.Changed("height") {
				p.HeightIn = height
			}
			if flags.Changed("fat-ratio") {
				p.FatRatio = fatRatio
			}
			if flags.Changed("unit") {
				p.Unit = domain.WeightUnit(unit)
			}
			if flags.Changed("activity") {
				if p.ActivityLevel, err = parseActivity(activity); err != nil {
					return err
				}
			}
			if flags.Changed("body-fat") {
				p.BodyFatPct = nil
				if bodyFat > 0 {
					frac := bodyFat / 100
					p.BodyFatPct = &frac
				}
			}
			switch {
			case flags.Changed("date") && flags.Changed("days"):
				return fmt.Errorf("use either --date or --days, not both")
			case flags.Changed("date"):
				if p.TargetDate, err = domain.ParseDate(targetDate); err != nil {
					return err
				}
			case flags.Changed("days"):
				p.TargetDate = today.AddDate(0, 0, days)
			}

			if err := app.Profiles.Save(ctx, p, today); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Profile saved."))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 0, "Current weight")
	cmd.Flags().Float64Var(&target, "target", 0, "Target weight")
	cmd.Flags().StringVar(&targetDate, "date", "", "Target (weigh-in) date, YYYY-MM-DD")
	cmd.Flags().IntVar(&days, "days", 0, "Target date as days from today")
	cmd.Flags().Float64Var(&height, "height", 0, "Height in inches")
	cmd.Flags().Float64Var(&bodyFat, "body-fat", 0, "Body fat percent (0 clears it)")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity level: "+activityOptions())
	cmd.Flags().StringVar(&unit, "unit", "", "Weight unit: lb or kg")
	cmd.Flags().Float64Var(&fatRatio, "fat-ratio", 0, "Share of calories from fat (default 0.25)")

	return cmd
}

func newProfileSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Interactive profile wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive {
				return fmt.Errorf("setup needs an interactive terminal; use 'weighin profile set' instead")
			}
			ctx := context.Background()
			today := app.today()

			p, err := existingOrNewProfile(ctx, app)
			if err != nil {
				return err
			}
			var existing *domain.Profile
			if p.CurrentWeight > 0 {
				existing = p
			}
			values := profileFormValuesFrom(existing)
			if err := profileSetupForm(&values, today).Run(); err != nil {
				return err
			}
			if err := values.apply(p); err != nil {
				return err
			}
			if err := app.Profiles.Save(ctx, p, today); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox("Profile saved", formatter.FormatProfile(p)))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
