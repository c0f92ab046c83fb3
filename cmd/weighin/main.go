package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/weighin/internal/cli"
	"github.com/alexanderramin/weighin/internal/config"
	"github.com/alexanderramin/weighin/internal/db"
	"github.com/alexanderramin/weighin/internal/fooddb"
	"github.com/alexanderramin/weighin/internal/repository"
	"github.com/alexanderramin/weighin/internal/service"
	"github.com/alexanderramin/weighin/internal/targets"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	baseline, err := cfg.Baseline()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Food lookup: FDC export when configured, embedded reference list always
	provider, closeFoods, err := fooddb.Open(cfg.FoodDBPath)
	if err != nil {
		return fmt.Errorf("opening food database: %w", err)
	}
	defer closeFoods()
	reference, err := fooddb.LoadReference()
	if err != nil {
		return err
	}

	// Wire repositories
	profileRepo := repository.NewSQLProfileRepo(database)
	weightRepo := repository.NewSQLWeightLogRepo(database)
	foodRepo := repository.NewSQLFoodLogRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewUnitOfWork(database)

	observer := service.ObserverFromConfig(cfg.LogUseCases, os.Stderr)

	app := &cli.App{
		Profiles: service.NewProfileService(profileRepo, observer),
		Weights:  service.NewWeightLogService(weightRepo, uow, observer),
		Foods:    service.NewFoodLogService(foodRepo, provider, uow, observer),
		Search:   service.NewFoodSearchService(provider, reference),
		Day: service.NewDayService(profileRepo, weightRepo, foodRepo,
			targets.NewCalculator(baseline), cfg.AdjustEnabled, observer),
		Progress: service.NewProgressService(profileRepo, weightRepo, cfg.TrendWindow, cfg.TolerancePct, observer),

		DefaultUser: cfg.User,
		// Wizards and the day navigator need a terminal on both ends.
		IsInteractive: isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd()),
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
