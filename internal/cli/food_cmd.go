package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/cli/formatter"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/fooddb"
	"github.com/spf13/cobra"
)

func newFoodCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Log food and search the food database",
	}

	cmd.AddCommand(
		newFoodAddCmd(a),
		newFoodAddDBCmd(a),
		newFoodEditCmd(a),
		newFoodRemoveCmd(a),
		newFoodListCmd(a),
		newFoodCopyCmd(a),
		newFoodSearchCmd(a),
		newFoodReferenceCmd(a),
	)

	return cmd
}

// nutrientFlags binds per-entry nutrient flags.
type nutrientFlags struct {
	n domain.NutrientTotals
}

func (f *nutrientFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.n.Calories, "calories", 0, "Calories (kcal)")
	cmd.Flags().Float64Var(&f.n.ProteinG, "protein", 0, "Protein (g)")
	cmd.Flags().Float64Var(&f.n.FatG, "fat", 0, "Fat (g)")
	cmd.Flags().Float64Var(&f.n.CarbG, "carbs", 0, "Carbohydrate (g)")
	cmd.Flags().Float64Var(&f.n.FiberG, "fiber", 0, "Fiber (g)")
	cmd.Flags().Float64Var(&f.n.SodiumMg, "sodium", 0, "Sodium (mg)")
}

// applyChanged copies only the flags the user set onto n.
func (f *nutrientFlags) applyChanged(cmd *cobra.Command, n *domain.NutrientTotals) {
	set := map[string]func(){
		"calories": func() { n.Calories = f.n.Calories },
		"protein":  func() { n.ProteinG = f.n.ProteinG },
		"fat":      func() { n.FatG = f.n.FatG },
		"carbs":    func() { n.CarbG = f.n.CarbG },
		"fiber":    func() { n.FiberG = f.n.FiberG },
		"sodium":   func() { n.SodiumMg = f.n.SodiumMg },
	}
	for name, apply := range set {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
}

func newFoodAddCmd(a *App) *cobra.Command {
	var date string
	var meal mealValue
	var nf nutrientFlags

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Log a food with manually entered nutrients",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateArg(date, a.today())
			if err != nil {
				return err
			}

			e := &domain.FoodEntry{
				UserID:    a.DefaultUser,
				Date:      day,
				Meal:      meal.Meal(),
				Name:      strings.Join(args, " "),
				Nutrients: nf.n,
			}
			if err := a.Foods.Add(context.Background(), e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s to %s (%s) %s\n",
				e.Name, e.Meal, formatter.FormatKcal(e.Nutrients.Calories), formatter.Dim(formatter.TruncID(e.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today, yesterday, or -N days)")
	cmd.Flags().Var(&meal, "meal", "Meal: breakfast, lunch, dinner, snacks (default snacks)")
	nf.register(cmd)
	_ = cmd.MarkFlagRequired("calories")

	return cmd
}

func newFoodAddDBCmd(a *App) *cobra.Command {
	var date string
	var meal mealValue
	var grams float64

	cmd := &cobra.Command{
		Use:   "add-db FOOD_ID",
		Short: "Log grams of a food from the food database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateArg(date, a.today())
			if err != nil {
				return err
			}

			e, err := a.Foods.AddFromProvider(context.Background(), app.AddFoodRequest{
				UserID: a.DefaultUser,
				Date:   day,
				Meal:   meal.Meal(),
				FoodID: args[0],
				Grams:  grams,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s to %s (%s) %s\n",
				e.Name, e.Meal, formatter.FormatKcal(e.Nutrients.Calories), formatter.Dim(formatter.TruncID(e.ID)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&grams, "grams", 0, "Portion in grams")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today, yesterday, or -N days)")
	cmd.Flags().Var(&meal, "meal", "Meal: breakfast, lunch, dinner, snacks (default snacks)")
	_ = cmd.MarkFlagRequired("grams")

	return cmd
}

// resolveFoodEntry finds an entry by full id, or by id prefix among the
// entries logged on date.
func resolveFoodEntry(ctx context.Context, a *App, id, date string) (*domain.FoodEntry, error) {
	if e, err := a.Foods.GetByID(ctx, id); err == nil {
		return e, nil
	}
	day, err := parseDateArg(date, a.today())
	if err != nil {
		return nil, err
	}
	entries, err := a.Foods.ListByDate(ctx, a.DefaultUser, day)
	if err != nil {
		return nil, err
	}
	var match *domain.FoodEntry
	for _, e := range entries {
		if strings.HasPrefix(e.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("food id %q is ambiguous on %s", id, day.Format(domain.DateLayout))
			}
			match = e
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no food entry %q on %s: %w", id, day.Format(domain.DateLayout), domain.ErrNotFound)
	}
	return match, nil
}

func newFoodEditCmd(a *App) *cobra.Command {
	var date, name string
	var meal mealValue
	var nf nutrientFlags

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a logged food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := resolveFoodEntry(ctx, a, args[0], date)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				e.Name = name
			}
			if cmd.Flags().Changed("meal") {
				e.Meal = meal.Meal()
			}
			nf.applyChanged(cmd, &e.Nutrients)

			if err := a.Foods.Update(ctx, e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", e.Name, formatter.FormatKcal(e.Nutrients.Calories))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date the entry was logged on, for short ids")
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().Var(&meal, "meal", "New meal")
	nf.register(cmd)

	return cmd
}

func newFoodRemoveCmd(a *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a logged food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			e, err := resolveFoodEntry(ctx, a, args[0], date)
			if err != nil {
				return err
			}
			if err := a.Foods.Delete(ctx, e.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", e.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date the entry was logged on, for short ids")

	return cmd
}

func newFoodListCmd(a *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's food log by meal",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDateArg(date, a.today())
			if err != nil {
				return err
			}
			ctx := context.Background()
			title := "Food log " + day.Format(domain.DateLayout)

			view, err := a.Day.Day(ctx, app.TargetsRequest{UserID: a.DefaultUser, Date: day})
			if errors.Is(err, domain.ErrNotFound) {
				// No profile yet: show the log without targets.
				entries, err := a.Foods.ListByDate(ctx, a.DefaultUser, day)
				if err != nil {
					return err
				}
				byMeal := make(map[domain.MealCategory]domain.NutrientTotals)
				for _, e := range entries {
					byMeal[e.Meal] = byMeal[e.Meal].Add(e.Nutrients)
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox(title, formatter.FormatFoodLog(entries, byMeal)))
				fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}
			if err != nil {
				return err
			}
			body := formatter.FormatFoodLog(view.Entries, view.ByMeal) +
				fmt.Sprintf("Total %s of %s", formatter.Bold(formatter.FormatKcal(view.Consumed.Calories)), formatter.FormatKcal(view.Targets.Calories))
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBox(title, body))
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today, yesterday, or -N days)")

	return cmd
}

func newFoodCopyCmd(a *App) *cobra.Command {
	var fromDate, fromMeal, toDate, toMeal string

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy a meal to another date or meal",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := a.today()
			from, err := parseDateArg(fromDate, today)
			if err != nil {
				return err
			}
			to, err := parseDateArg(toDate, today)
			if err != nil {
				return err
			}
			if toMeal == "" {
				toMeal = fromMeal
			}

			n, err := a.Foods.CopyMeal(context.Background(), app.CopyMealRequest{
				UserID:   a.DefaultUser,
				FromDate: from,
				FromMeal: domain.MealCategory(strings.ToLower(fromMeal)),
				ToDate:   to,
				ToMeal:   domain.MealCategory(strings.ToLower(toMeal)),
			})
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing to copy."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d items from %s %s to %s %s\n",
				n, from.Format(domain.DateLayout), fromMeal, to.Format(domain.DateLayout), toMeal)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromDate, "from-date", "yesterday", "Source date")
	cmd.Flags().StringVar(&fromMeal, "from-meal", "", "Source meal")
	cmd.Flags().StringVar(&toDate, "to-date", "today", "Destination date")
	cmd.Flags().StringVar(&toMeal, "to-meal", "", "Destination meal (default: same as source)")
	_ = cmd.MarkFlagRequired("from-meal")

	return cmd
}

func newFoodSearchCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the food database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.Search.Search(context.Background(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFoodFacts(results))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", fooddb.DefaultSearchLimit, "Maximum results")

	return cmd
}

func newFoodReferenceCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "Low-fiber, low-sodium foods for the last days of a cut",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReference(a.Search.Reference()))
			return nil
		},
	}
}
