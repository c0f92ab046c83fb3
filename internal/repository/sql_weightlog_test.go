package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/weighin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightLogRepo_UpsertOnePerDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLWeightLogRepo(db)
	ctx := context.Background()
	day := testutil.Today()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestWeightEntry(day, 180.2, testutil.WithNote("morning"))))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestWeightEntry(day, 179.6, testutil.WithNote("after sauna"))))

	entries, err := repo.ListByUser(ctx, "test-user")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 179.6, entries[0].Weight)
	assert.Equal(t, "after sauna", entries[0].Note)
	assert.True(t, day.Equal(entries[0].Date))
}

func TestWeightLogRepo_ListOrderedByDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLWeightLogRepo(db)
	ctx := context.Background()
	day := testutil.Today()

	for _, offset := range []int{0, -5, -2, -9} {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestWeightEntry(day.AddDate(0, 0, offset), 180+float64(offset))))
	}
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestWeightEntry(day, 150, testutil.WithWeightUser("other"))))

	entries, err := repo.ListByUser(ctx, "test-user")
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].Date.Before(entries[i].Date))
	}

	ranged, err := repo.ListRange(ctx, "test-user", day.AddDate(0, 0, -5), day.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, 175.0, ranged[0].Weight)
	assert.Equal(t, 178.0, ranged[1].Weight)
}

func TestWeightLogRepo_GetByDateAndLatest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLWeightLogRepo(db)
	ctx := context.Background()
	day := testutil.Today()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestWeightEntry(day.AddDate(0, 0, -3), 181)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestWeightEntry(day.AddDate(0, 0, -1), 180)))

	got, err := repo.GetByDate(ctx, "test-user", day.AddDate(0, 0, -3))
	require.NoError(t, err)
	assert.Equal(t, 181.0, got.Weight)

	_, err = repo.GetByDate(ctx, "test-user", day)
	assert.ErrorIs(t, err, ErrNotFound)

	latest, err := repo.LatestOnOrBefore(ctx, "test-user", day)
	require.NoError(t, err)
	assert.Equal(t, 180.0, latest.Weight)

	latest, err = repo.LatestOnOrBefore(ctx, "test-user", day.AddDate(0, 0, -2))
	require.NoError(t, err)
	assert.Equal(t, 181.0, latest.Weight)

	_, err = repo.LatestOnOrBefore(ctx, "test-user", day.AddDate(0, 0, -10))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWeightLogRepo_DeleteByDate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLWeightLogRepo(db)
	ctx := context.Background()
	day := testutil.Today()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestWeightEntry(day, 180)))
	require.NoError(t, repo.DeleteByDate(ctx, "test-user", day))

	_, err := repo.GetByDate(ctx, "test-user", day)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.DeleteByDate(ctx, "test-user", day)
	assert.ErrorIs(t, err, ErrNotFound)
}
