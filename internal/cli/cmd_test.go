package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/fooddb"
	"github.com/alexanderramin/weighin/internal/repository"
	"github.com/alexanderramin/weighin/internal/service"
	"github.com/alexanderramin/weighin/internal/targets"
	"github.com/alexanderramin/weighin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)

	profRepo := repository.NewSQLProfileRepo(db)
	weightRepo := repository.NewSQLWeightLogRepo(db)
	foodRepo := repository.NewSQLFoodLogRepo(db)

	ref, err := fooddb.LoadReference()
	require.NoError(t, err)

	return &App{
		Profiles:    service.NewProfileService(profRepo),
		Weights:     service.NewWeightLogService(weightRepo, uow),
		Foods:       service.NewFoodLogService(foodRepo, ref, uow),
		Search:      service.NewFoodSearchService(ref, ref),
		Day:         service.NewDayService(profRepo, weightRepo, foodRepo, targets.NewCalculator(nil), true),
		Progress:    service.NewProgressService(profRepo, weightRepo, 7, 0.005),
		DefaultUser: "test-user",
	}
}

// seedProfile saves the default 180 -> 165 lb profile, ten days out.
func seedProfile(t *testing.T, app *App) *domain.Profile {
	t.Helper()
	p := testutil.NewTestProfile()
	require.NoError(t, app.Profiles.Save(context.Background(), p, testutil.Today()))
	return p
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "weighin")
	assert.Contains(t, output, "targets")
}

func TestRootCmd_UserFlag(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	_, err := executeCmd(t, app, "targets", "--user", "someone-else")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "someone-else")
}

// --- profile ---

func TestProfileSetCmd_CreatesProfile(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "profile", "set",
		"--weight", "182", "--target", "170", "--days", "21",
		"--height", "69", "--activity", "very-active", "--body-fat", "18")
	require.NoError(t, err)
	assert.Contains(t, output, "Profile saved.")

	p, err := app.Profiles.Get(context.Background(), "test-user")
	require.NoError(t, err)
	assert.Equal(t, 182.0, p.CurrentWeight)
	assert.Equal(t, domain.ActivityVeryActive, p.ActivityLevel)
	assert.True(t, p.TargetDate.Equal(testutil.Today().AddDate(0, 0, 21)))
	require.NotNil(t, p.BodyFatPct)
	assert.InDelta(t, 0.18, *p.BodyFatPct, 1e-9)
}

func TestProfileSetCmd_PartialUpdate(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	_, err := executeCmd(t, app, "profile", "set", "--target", "160")
	require.NoError(t, err)

	p, err := app.Profiles.Get(context.Background(), "test-user")
	require.NoError(t, err)
	assert.Equal(t, 160.0, p.TargetWeight)
	assert.Equal(t, 180.0, p.CurrentWeight, "unchanged fields are kept")
}

func TestProfileSetCmd_RejectsPastTargetDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "profile", "set",
		"--weight", "182", "--target", "170", "--date", "2001-01-01",
		"--height", "69", "--activity", "sedentary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target date must be in the future")
}

func TestCmds_RejectNonFiniteNumbers(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	tests := []struct {
		name string
		args []string
	}{
		{"profile weight", []string{"profile", "set", "--weight", "Inf"}},
		{"profile height", []string{"profile", "set", "--height", "NaN"}},
		{"weigh-in", []string{"weight", "log", "NaN"}},
		{"food calories", []string{"food", "add", "Toast", "--calories", "+Inf"}},
		{"food protein", []string{"food", "add", "Toast", "--calories", "80", "--protein", "NaN"}},
		{"food grams", []string{"food", "add-db", "ref:bananas", "--grams", "Inf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, app, tt.args...)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	p, err := app.Profiles.Get(context.Background(), "test-user")
	require.NoError(t, err)
	assert.Equal(t, 180.0, p.CurrentWeight)
	assert.Equal(t, 70.0, p.HeightIn)

	output, err := executeCmd(t, app, "food", "list")
	require.NoError(t, err)
	assert.NotContains(t, output, "Toast")
}

func TestProfileSetCmd_DateAndDaysConflict(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "profile", "set", "--date", "2030-01-01", "--days", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --date or --days")
}

func TestProfileSetupCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "profile", "setup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weighin profile set")
}

func TestProfileShowCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "profile", "show")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	seedProfile(t, app)
	output, err := executeCmd(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "180.0 lb")
	assert.Contains(t, output, "moderately active")
}

// --- weight ---

func TestWeightLogCmd_UpdateProfile(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	output, err := executeCmd(t, app, "weight", "log", "178.4", "--update-profile", "--note", "morning")
	require.NoError(t, err)
	assert.Contains(t, output, "Logged 178.4")

	p, err := app.Profiles.Get(context.Background(), "test-user")
	require.NoError(t, err)
	assert.Equal(t, 178.4, p.CurrentWeight)

	output, err = executeCmd(t, app, "weight", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "178.4 lb")
	assert.Contains(t, output, "morning")
}

func TestWeightLogCmd_InvalidInput(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "weight", "log", "heavy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid weight")

	_, err = executeCmd(t, app, "weight", "log", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCmd(t, app, "weight", "log", "180", "--date", "03/01/2026")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCmd(t, app, "weight", "log", "180", "--date", "tomorrow")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "in the future")
}

func TestWeightRemoveCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "weight", "log", "180", "--date", "yesterday")
	require.NoError(t, err)
	output, err := executeCmd(t, app, "weight", "remove", "yesterday")
	require.NoError(t, err)
	assert.Contains(t, output, "Removed weigh-in")

	_, err = executeCmd(t, app, "weight", "remove", "yesterday")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- food ---

func TestFoodAddAndListCmd(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	_, err := executeCmd(t, app, "food", "add", "Greek", "yogurt", "--calories", "120", "--protein", "20", "--meal", "breakfast")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "food", "add-db", "ref:bananas", "--grams", "120", "--meal", "snacks")
	require.NoError(t, err)

	output, err := executeCmd(t, app, "food", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Greek yogurt")
	assert.Contains(t, output, "Bananas (120g)")
	assert.Contains(t, output, "BREAKFAST")
	assert.Contains(t, output, "of 2790 kcal")
}

func TestFoodListCmd_WithoutProfile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "food", "add", "Toast", "--calories", "80")
	require.NoError(t, err)

	output, err := executeCmd(t, app, "food", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Toast")
}

func TestFoodAddCmd_Validation(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "food", "add", "Toast")
	require.Error(t, err, "calories are required")

	_, err = executeCmd(t, app, "food", "add", "Toast", "--calories", "80", "--meal", "brunch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown meal")

	_, err = executeCmd(t, app, "food", "add-db", "ref:unknown", "--grams", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOOD_NOT_FOUND")
}

func TestFoodEditAndRemoveCmd_ShortID(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	e := testutil.NewTestFoodEntry("Rice")
	require.NoError(t, app.Foods.Add(ctx, e))

	_, err := executeCmd(t, app, "food", "edit", e.ID[:8], "--calories", "250", "--meal", "dinner")
	require.NoError(t, err)

	fetched, err := app.Foods.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, fetched.Nutrients.Calories)
	assert.Equal(t, 10.0, fetched.Nutrients.ProteinG, "unset nutrient flags are kept")
	assert.Equal(t, domain.MealDinner, fetched.Meal)

	output, err := executeCmd(t, app, "food", "remove", e.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, output, "Removed Rice")

	_, err = executeCmd(t, app, "food", "remove", e.ID[:8])
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFoodCopyCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	yesterday := testutil.Today().AddDate(0, 0, -1)

	require.NoError(t, app.Foods.Add(ctx, testutil.NewTestFoodEntry("Oats",
		testutil.WithMeal(domain.MealBreakfast), testutil.WithFoodDate(yesterday))))

	output, err := executeCmd(t, app, "food", "copy", "--from-meal", "breakfast")
	require.NoError(t, err)
	assert.Contains(t, output, "Copied 1 items")

	entries, err := app.Foods.ListByDate(ctx, "test-user", testutil.Today())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.MealBreakfast, entries[0].Meal)

	output, err = executeCmd(t, app, "food", "copy", "--from-meal", "lunch")
	require.NoError(t, err)
	assert.Contains(t, output, "Nothing to copy.")

	_, err = executeCmd(t, app, "food", "copy", "--from-meal", "lunch", "--from-date", "today")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_RANGE")
}

func TestFoodSearchAndReferenceCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "food", "search", "beef")
	require.NoError(t, err)
	assert.Contains(t, output, "ref:beef-eye-of-round")

	output, err = executeCmd(t, app, "food", "reference")
	require.NoError(t, err)
	assert.Contains(t, output, "MEATS")
	assert.Contains(t, output, "FRUITS")
}

// --- targets / trajectory / progress / day ---

func TestTargetsCmd(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	output, err := executeCmd(t, app, "targets")
	require.NoError(t, err)
	assert.Contains(t, output, "2790")
	assert.Contains(t, output, "10 days left")
	assert.Contains(t, output, "Log a weigh-in")

	output, err = executeCmd(t, app, "targets", "--date", "+9")
	require.NoError(t, err)
	assert.Contains(t, output, "[1 DAY OUT]")
	assert.Contains(t, output, "800 mg")
}

func TestTargetsCmd_MissingProfile(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "targets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROFILE_MISSING")
}

func TestTrajectoryCmd(t *testing.T) {
	app := testApp(t)
	p := seedProfile(t, app)

	output, err := executeCmd(t, app, "trajectory")
	require.NoError(t, err)
	assert.Contains(t, output, p.StartDate.Format(domain.DateLayout))
	assert.Contains(t, output, p.TargetDate.Format(domain.DateLayout))
	assert.Contains(t, output, "[GOAL DAY]")

	_, err = executeCmd(t, app, "trajectory", "--from", "+3", "--to", "today")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_RANGE")
}

func TestProgressCmd(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)

	output, err := executeCmd(t, app, "progress")
	require.NoError(t, err)
	assert.Contains(t, output, "NOT ENOUGH DATA")

	_, err = executeCmd(t, app, "weight", "log", "181", "--date", "-2")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "weight", "log", "180", "--date", "today")
	require.NoError(t, err)

	output, err = executeCmd(t, app, "progress")
	require.NoError(t, err)
	assert.Contains(t, output, "Trend")
	assert.Contains(t, output, "over 2 weigh-ins")
}

func TestProgressCmd_UsesAppClock(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	app.Now = func() time.Time {
		return testutil.Today().AddDate(0, 0, 3).Add(22*time.Hour + 30*time.Minute)
	}

	output, err := executeCmd(t, app, "progress")
	require.NoError(t, err)
	assert.Contains(t, output, "7 days left")
}

func TestDayCmd_NonInteractive(t *testing.T) {
	app := testApp(t)
	seedProfile(t, app)
	require.NoError(t, app.Foods.Add(context.Background(), testutil.NewTestFoodEntry("Apple")))

	output, err := executeCmd(t, app, "day")
	require.NoError(t, err)
	assert.Contains(t, output, "TARGETS")
	assert.Contains(t, output, "Apple")
}
