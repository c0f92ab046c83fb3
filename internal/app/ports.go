package app

import (
	"context"
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
)

type DayUseCase interface {
	Day(ctx context.Context, req TargetsRequest) (*DayView, error)
}

type ProgressUseCase interface {
	Progress(ctx context.Context, req ProgressRequest) (*ProgressResponse, error)
}

type TrajectoryUseCase interface {
	Trajectory(ctx context.Context, req TrajectoryRequest) (*TrajectoryResponse, error)
}

type LogWeightRequest struct {
	Entry *domain.WeightEntry
	// UpdateProfile also sets the profile's current weight in the same
	// transaction. Only weigh-ins between the profile's start date and its
	// target date may rebase it.
	UpdateProfile bool
	// Today is the caller's calendar day; zero means the current day.
	Today time.Time
}

type LogWeightUseCase interface {
	LogWeight(ctx context.Context, req LogWeightRequest) error
}

type CopyMealRequest struct {
	UserID   string
	FromDate time.Time
	FromMeal domain.MealCategory
	ToDate   time.Time
	ToMeal   domain.MealCategory
}

type CopyMealUseCase interface {
	CopyMeal(ctx context.Context, req CopyMealRequest) (int, error)
}

// AddFoodRequest logs a portion of a food-provider record.
type AddFoodRequest struct {
	UserID string
	Date   time.Time
	Meal   domain.MealCategory
	FoodID string
	Grams  float64
}
