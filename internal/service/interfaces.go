package service

import (
	"context"
	"time"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/fooddb"
)

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	// Save applies defaults, validates against today, and stores the
	// profile with today as its new start date.
	Save(ctx context.Context, p *domain.Profile, today time.Time) error
}

type WeightLogService interface {
	app.LogWeightUseCase
	List(ctx context.Context, userID string) ([]*domain.WeightEntry, error)
	GetByDate(ctx context.Context, userID string, date time.Time) (*domain.WeightEntry, error)
	Delete(ctx context.Context, userID string, date time.Time) error
}

type FoodLogService interface {
	app.CopyMealUseCase
	Add(ctx context.Context, e *domain.FoodEntry) error
	AddFromProvider(ctx context.Context, req app.AddFoodRequest) (*domain.FoodEntry, error)
	GetByID(ctx context.Context, id string) (*domain.FoodEntry, error)
	Update(ctx context.Context, e *domain.FoodEntry) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, userID string, date time.Time) ([]*domain.FoodEntry, error)
}

type FoodSearchService interface {
	Search(ctx context.Context, query string, limit int) ([]domain.FoodFacts, error)
	Get(ctx context.Context, id string) (*domain.FoodFacts, error)
	Reference() []fooddb.ReferenceGroup
}

type DayService interface {
	app.DayUseCase
}

type ProgressService interface {
	app.ProgressUseCase
	app.TrajectoryUseCase
}
