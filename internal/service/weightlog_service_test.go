package service

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/repository"
	"github.com/alexanderramin/weighin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightLogService_LogWeight_ReplacesSameDay(t *testing.T) {
	_, weights, _, uow := setupRepos(t)
	ctx := context.Background()
	svc := NewWeightLogService(weights, uow)
	today := testutil.Today()

	require.NoError(t, svc.LogWeight(ctx, app.LogWeightRequest{Entry: testutil.NewTestWeightEntry(today, 179.4)}))
	require.NoError(t, svc.LogWeight(ctx, app.LogWeightRequest{
		Entry: testutil.NewTestWeightEntry(today, 178.8, testutil.WithNote("after run")),
	}))

	entries, err := svc.List(ctx, "test-user")
	require.NoError(t, err)
	require.Len(t, entries, 1, "one weigh-in per day")
	assert.Equal(t, 178.8, entries[0].Weight)
	assert.Equal(t, "after run", entries[0].Note)
}

func TestWeightLogService_LogWeight_RejectsNonPositive(t *testing.T) {
	_, weights, _, uow := setupRepos(t)
	svc := NewWeightLogService(weights, uow)

	err := svc.LogWeight(context.Background(), app.LogWeightRequest{
		Entry: testutil.NewTestWeightEntry(testutil.Today(), 0),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWeightLogService_LogWeight_UpdateProfile(t *testing.T) {
	profiles, weights, _, uow := setupRepos(t)
	ctx := context.Background()
	today := testutil.Today()

	p := testutil.NewTestProfile(testutil.WithStartDate(today.AddDate(0, 0, -7)), testutil.WithDaysToGoal(21))
	require.NoError(t, profiles.Upsert(ctx, p))

	svc := NewWeightLogService(weights, uow)
	require.NoError(t, svc.LogWeight(ctx, app.LogWeightRequest{
		Entry:         testutil.NewTestWeightEntry(today, 176.2),
		UpdateProfile: true,
	}))

	fetched, err := profiles.Get(ctx, p.UserID)
	require.NoError(t, err)
	assert.Equal(t, 176.2, fetched.CurrentWeight)
	assert.True(t, fetched.StartDate.Equal(today), "trajectory should restart from the weigh-in")
	assert.True(t, fetched.TargetDate.Equal(p.TargetDate), "target date is unchanged")
}

func TestWeightLogService_LogWeight_RejectsFutureDate(t *testing.T) {
	_, weights, _, uow := setupRepos(t)
	ctx := context.Background()
	svc := NewWeightLogService(weights, uow)
	today := testutil.Today()
	tomorrow := today.AddDate(0, 0, 1)

	err := svc.LogWeight(ctx, app.LogWeightRequest{
		Entry: testutil.NewTestWeightEntry(tomorrow, 179),
		Today: today,
	})
	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "date", valErr.Field)
	assert.Contains(t, valErr.Message, "in the future")

	_, err = weights.GetByDate(ctx, "test-user", tomorrow)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestWeightLogService_LogWeight_RejectsNonFiniteWeight(t *testing.T) {
	_, weights, _, uow := setupRepos(t)
	svc := NewWeightLogService(weights, uow)

	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := svc.LogWeight(context.Background(), app.LogWeightRequest{
			Entry: testutil.NewTestWeightEntry(testutil.Today(), w),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "weight %v", w)
	}
}

func TestWeightLogService_LogWeight_UpdateProfileOutsideWindow(t *testing.T) {
	today := testutil.Today()
	start := today.AddDate(0, 0, -7)
	target := today.AddDate(0, 0, 21)

	tests := []struct {
		name    string
		date    time.Time
		today   time.Time
		message string
	}{
		{"before start date", start.AddDate(0, 0, -23), today, "older than the profile start date"},
		{"on target date", target, target, "on or after the target date"},
		{"after target date", target.AddDate(0, 0, 2), target.AddDate(0, 0, 2), "on or after the target date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, weights, _, uow := setupRepos(t)
			ctx := context.Background()

			p := testutil.NewTestProfile(testutil.WithStartDate(start), testutil.WithDaysToGoal(28))
			require.NoError(t, profiles.Upsert(ctx, p))
			require.True(t, p.TargetDate.Equal(target))

			svc := NewWeightLogService(weights, uow)
			err := svc.LogWeight(ctx, app.LogWeightRequest{
				Entry:         testutil.NewTestWeightEntry(tt.date, 190),
				UpdateProfile: true,
				Today:         tt.today,
			})
			var valErr *domain.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, "date", valErr.Field)
			assert.Contains(t, valErr.Message, tt.message)

			fetched, err := profiles.Get(ctx, p.UserID)
			require.NoError(t, err)
			assert.Equal(t, p.CurrentWeight, fetched.CurrentWeight, "profile is not rebased")
			assert.True(t, fetched.StartDate.Equal(start))
			assert.NoError(t, fetched.Validate(start), "stored profile stays valid")

			_, err = weights.GetByDate(ctx, "test-user", tt.date)
			assert.ErrorIs(t, err, repository.ErrNotFound, "weigh-in is not stored either")
		})
	}
}

func TestWeightLogService_LogWeight_UpdateProfileWithoutProfile(t *testing.T) {
	_, weights, _, uow := setupRepos(t)
	ctx := context.Background()
	svc := NewWeightLogService(weights, uow)
	today := testutil.Today()

	err := svc.LogWeight(ctx, app.LogWeightRequest{
		Entry:         testutil.NewTestWeightEntry(today, 176.2),
		UpdateProfile: true,
	})
	var reqErr *app.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, app.ErrProfileMissing, reqErr.Code)

	_, err = weights.GetByDate(ctx, "test-user", today)
	assert.ErrorIs(t, err, repository.ErrNotFound, "weigh-in should roll back with the missing profile")
}

func TestWeightLogService_LogWeight_RollbackOnProfileUpdateFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	profiles := repository.NewSQLProfileRepo(database)
	weights := repository.NewSQLWeightLogRepo(database)
	ctx := context.Background()
	today := testutil.Today()

	p := testutil.NewTestProfile()
	require.NoError(t, profiles.Upsert(ctx, p))

	// ExecContext #1 = weight upsert, #2 = profile rebase
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 2,
		Err:    fmt.Errorf("injected profile update failure"),
	}
	svc := NewWeightLogService(weights, failUoW)

	err := svc.LogWeight(ctx, app.LogWeightRequest{
		Entry:         testutil.NewTestWeightEntry(today, 177),
		UpdateProfile: true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected profile update failure")

	_, err = weights.GetByDate(ctx, "test-user", today)
	assert.ErrorIs(t, err, repository.ErrNotFound, "weigh-in should not be stored after rollback")

	fetched, err := profiles.Get(ctx, p.UserID)
	require.NoError(t, err)
	assert.Equal(t, 180.0, fetched.CurrentWeight, "profile should be unchanged after rollback")
}

func TestWeightLogService_Delete(t *testing.T) {
	_, weights, _, uow := setupRepos(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewWeightLogService(weights, uow, obs)
	today := testutil.Today()

	require.NoError(t, svc.LogWeight(ctx, app.LogWeightRequest{Entry: testutil.NewTestWeightEntry(today, 179)}))
	require.NoError(t, svc.Delete(ctx, "test-user", today))

	_, err := svc.GetByDate(ctx, "test-user", today)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(ctx, "test-user", today)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	deletes := obs.byName("delete-weight")
	require.Len(t, deletes, 2)
	assert.True(t, deletes[0].Success)
	assert.False(t, deletes[1].Success)
	assert.Len(t, obs.byName("log-weight"), 1)
}
