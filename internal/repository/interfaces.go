package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
)

// ErrNotFound is returned when a keyed row does not exist.
var ErrNotFound = domain.ErrNotFound

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
	// RebaseCurrentWeight sets the current weight as of date, which becomes
	// the new start of the trajectory. The goal is untouched.
	RebaseCurrentWeight(ctx context.Context, userID string, weight float64, asOf time.Time) error
}

// WeightLogRepo stores at most one weigh-in per user per date.
type WeightLogRepo interface {
	Upsert(ctx context.Context, e *domain.WeightEntry) error
	GetByDate(ctx context.Context, userID string, date time.Time) (*domain.WeightEntry, error)
	// LatestOnOrBefore returns the most recent weigh-in dated on or before date.
	LatestOnOrBefore(ctx context.Context, userID string, date time.Time) (*domain.WeightEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.WeightEntry, error)
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.WeightEntry, error)
	DeleteByDate(ctx context.Context, userID string, date time.Time) error
}

type FoodLogRepo interface {
	Create(ctx context.Context, e *domain.FoodEntry) error
	GetByID(ctx context.Context, id string) (*domain.FoodEntry, error)
	Update(ctx context.Context, e *domain.FoodEntry) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, userID string, date time.Time) ([]*domain.FoodEntry, error)
	ListByMeal(ctx context.Context, userID string, date time.Time, meal domain.MealCategory) ([]*domain.FoodEntry, error)
	DailyTotals(ctx context.Context, userID string, date time.Time) (domain.NutrientTotals, error)
	TotalsByMeal(ctx context.Context, userID string, date time.Time) (map[domain.MealCategory]domain.NutrientTotals, error)
}
