package cli

import (
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles service.ProfileService
	Weights  service.WeightLogService
	Foods    service.FoodLogService
	Search   service.FoodSearchService
	Day      service.DayService
	Progress service.ProgressService

	// DefaultUser is used when --user is not given.
	DefaultUser string
	// IsInteractive enables wizards and the day navigator.
	IsInteractive bool
	// Now overrides the clock in tests.
	Now func() time.Time
}

// today returns the current calendar day.
func (a *App) today() time.Time {
	if a.Now != nil {
		return domain.Day(a.Now())
	}
	return domain.Day(time.Now())
}

// NewRootCmd creates the top-level "weighin" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "weighin",
		Short:         "Weight-cut and nutrition target tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var user string
	root.PersistentFlags().StringVar(&user, "user", "", "User id (default from WEIGHIN_USER)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if user != "" {
			app.DefaultUser = user
		}
	}

	root.AddCommand(
		newProfileCmd(app),
		newWeightCmd(app),
		newFoodCmd(app),
		newTargetsCmd(app),
		newTrajectoryCmd(app),
		newProgressCmd(app),
		newDayCmd(app),
	)

	return root
}
