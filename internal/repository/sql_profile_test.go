package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLProfileRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProfile(testutil.WithBodyFat(0.18), testutil.WithFatRatio(0.3))
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, p.UserID)
	require.NoError(t, err)
	assert.Equal(t, p.UserID, got.UserID)
	assert.Equal(t, 180.0, got.CurrentWeight)
	assert.Equal(t, 165.0, got.TargetWeight)
	assert.Equal(t, domain.UnitPounds, got.Unit)
	assert.Equal(t, domain.ActivityModeratelyActive, got.ActivityLevel)
	assert.Equal(t, 0.3, got.FatRatio)
	require.NotNil(t, got.BodyFatPct)
	assert.Equal(t, 0.18, *got.BodyFatPct)
	assert.True(t, p.StartDate.Equal(got.StartDate))
	assert.True(t, p.TargetDate.Equal(got.TargetDate))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestProfileRepo_UpsertReplacesExisting(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLProfileRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProfile(testutil.WithBodyFat(0.2))
	require.NoError(t, repo.Upsert(ctx, p))

	p.TargetWeight = 160
	p.BodyFatPct = nil
	p.ActivityLevel = domain.ActivityVeryActive
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, p.UserID)
	require.NoError(t, err)
	assert.Equal(t, 160.0, got.TargetWeight)
	assert.Nil(t, got.BodyFatPct)
	assert.Equal(t, domain.ActivityVeryActive, got.ActivityLevel)
}

func TestProfileRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLProfileRepo(db)

	_, err := repo.Get(context.Background(), "nobody")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_UsersAreIndependent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLProfileRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile(testutil.WithUser("a"), testutil.WithWeights(200, 180))))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProfile(testutil.WithUser("b"), testutil.WithWeights(140, 130))))

	a, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	b, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 200.0, a.CurrentWeight)
	assert.Equal(t, 140.0, b.CurrentWeight)
}

func TestProfileRepo_RebaseCurrentWeight(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLProfileRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProfile()
	require.NoError(t, repo.Upsert(ctx, p))
	asOf := p.StartDate.AddDate(0, 0, 2)
	require.NoError(t, repo.RebaseCurrentWeight(ctx, p.UserID, 176.4, asOf))

	got, err := repo.Get(ctx, p.UserID)
	require.NoError(t, err)
	assert.Equal(t, 176.4, got.CurrentWeight)
	assert.Equal(t, 165.0, got.TargetWeight)
	assert.True(t, asOf.Equal(got.StartDate))
	assert.True(t, p.TargetDate.Equal(got.TargetDate))

	err = repo.RebaseCurrentWeight(ctx, "nobody", 150, asOf)
	assert.ErrorIs(t, err, ErrNotFound)
}
