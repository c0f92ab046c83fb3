package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/spf13/pflag"
)

// parseDateArg accepts YYYY-MM-DD, "today", "yesterday", "tomorrow", or a
// signed day offset such as -2. Empty means today.
func parseDateArg(s string, today time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		if offset, err := strconv.Atoi(s); err == nil {
			return today.AddDate(0, 0, offset), nil
		}
	}
	return domain.ParseDate(s)
}

func parseMeal(s string) (domain.MealCategory, error) {
	if s == "" {
		return domain.MealSnacks, nil
	}
	m := domain.MealCategory(strings.ToLower(s))
	if !domain.ValidMealCategories[m] {
		return "", &domain.ValidationError{
			Field:   "meal",
			Message: fmt.Sprintf("unknown meal %q (breakfast, lunch, dinner, snacks)", s),
		}
	}
	return m, nil
}

// mealValue is a --meal flag that rejects unknown categories at parse time.
type mealValue struct {
	meal domain.MealCategory
}

var _ pflag.Value = (*mealValue)(nil)

func (v *mealValue) String() string { return string(v.meal) }

func (v *mealValue) Set(s string) error {
	m, err := parseMeal(s)
	if err != nil {
		return err
	}
	v.meal = m
	return nil
}

func (v *mealValue) Type() string { return "meal" }

// Meal returns the parsed category, snacks when the flag was not given.
func (v *mealValue) Meal() domain.MealCategory {
	if v.meal == "" {
		return domain.MealSnacks
	}
	return v.meal
}

func parseActivity(s string) (domain.ActivityLevel, error) {
	level := domain.ActivityLevel(strings.ReplaceAll(strings.ToLower(s), "-", "_"))
	if !domain.ValidActivityLevels[level] {
		return "", &domain.ValidationError{
			Field:   "activity",
			Message: fmt.Sprintf("unknown activity level %q", s),
		}
	}
	return level, nil
}

func activityOptions() string {
	names := make([]string, 0, len(domain.ActivityLevels))
	for _, l := range domain.ActivityLevels {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}
