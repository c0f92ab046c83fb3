package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/fooddb"
)

// FormatFoodLog renders a day's entries grouped by meal with per-meal totals.
func FormatFoodLog(entries []*domain.FoodEntry, byMeal map[domain.MealCategory]domain.NutrientTotals) string {
	if len(entries) == 0 {
		return Dim("Nothing logged.") + "\n"
	}

	grouped := make(map[domain.MealCategory][]*domain.FoodEntry)
	for _, e := range entries {
		grouped[e.Meal] = append(grouped[e.Meal], e)
	}

	var b strings.Builder
	headers := []string{"ID", "FOOD", "KCAL", "P", "F", "C", "FIBER", "NA"}
	align := []bool{false, false, true, true, true, true, true, true}
	for _, meal := range domain.MealCategories {
		items := grouped[meal]
		if len(items) == 0 {
			continue
		}
		total := byMeal[meal]
		fmt.Fprintf(&b, "%s  %s\n", Header(string(meal)), Dim(FormatKcal(total.Calories)))

		rows := make([][]string, 0, len(items))
		for _, e := range items {
			rows = append(rows, append([]string{Dim(TruncID(e.ID)), Truncate(e.Name, 40)}, nutrientCells(e.Nutrients)...))
		}
		b.WriteString(RenderTableAligned(headers, rows, align))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatFoodFacts renders provider search results, per 100 g.
func FormatFoodFacts(results []domain.FoodFacts) string {
	if len(results) == 0 {
		return Dim("No foods found.") + "\n"
	}
	headers := []string{"ID", "NAME", "KCAL", "P", "F", "C", "FIBER", "NA"}
	rows := make([][]string, 0, len(results))
	for _, f := range results {
		rows = append(rows, append([]string{StyleBlue.Render(f.ID), Truncate(f.Name, 48)}, nutrientCells(f.Per100g)...))
	}
	return RenderTableAligned(headers, rows, []bool{false, false, true, true, true, true, true, true}) +
		Dim("values per 100 g") + "\n"
}

// FormatReference renders the cutting reference foods by group.
func FormatReference(groups []fooddb.ReferenceGroup) string {
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(Header(g.Name) + "\n")
		for _, f := range g.Foods {
			fmt.Fprintf(&b, "  %-36s %s\n", f.Name,
				Dim(fmt.Sprintf("%.0f kcal, %.1f g fiber, %.0f mg sodium  %s", f.Per100g.Calories, f.Per100g.FiberG, f.Per100g.SodiumMg, f.ID)))
		}
		b.WriteString("\n")
	}
	b.WriteString(Dim("values per 100 g; add with 'weighin food add-db <id> --grams N'") + "\n")
	return b.String()
}

func nutrientCells(n domain.NutrientTotals) []string {
	return []string{
		fmt.Sprintf("%.0f", n.Calories),
		fmt.Sprintf("%.1f", n.ProteinG),
		fmt.Sprintf("%.1f", n.FatG),
		fmt.Sprintf("%.1f", n.CarbG),
		fmt.Sprintf("%.1f", n.FiberG),
		fmt.Sprintf("%.0f", n.SodiumMg),
	}
}
