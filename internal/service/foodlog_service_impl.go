package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/db"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/fooddb"
	"github.com/alexanderramin/weighin/internal/repository"
	"github.com/google/uuid"
)

type foodLogService struct {
	foods    repository.FoodLogRepo
	provider fooddb.Provider
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewFoodLogService(
	foods repository.FoodLogRepo,
	provider fooddb.Provider,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) FoodLogService {
	return &foodLogService{
		foods:    foods,
		provider: provider,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *foodLogService) Add(ctx context.Context, e *domain.FoodEntry) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": e.UserID, "meal": string(e.Meal)}
	defer observeUseCase(ctx, s.observer, "add-food", startedAt, fields, &err)

	prepareNewEntry(e)
	fields["meal"] = string(e.Meal)
	if err = e.Validate(); err != nil {
		return err
	}
	if err = s.foods.Create(ctx, e); err != nil {
		return fmt.Errorf("logging food: %w", err)
	}
	fields["calories"] = e.Nutrients.Calories
	return nil
}

// AddFromProvider logs grams of a provider food, scaling its per-100 g facts.
func (s *foodLogService) AddFromProvider(ctx context.Context, req app.AddFoodRequest) (_ *domain.FoodEntry, err error) {
	if !domain.Finite(req.Grams) || req.Grams <= 0 {
		return nil, &domain.ValidationError{Field: "grams", Message: "grams must be positive"}
	}
	facts, err := s.provider.Get(ctx, req.FoodID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, &app.RequestError{Code: app.ErrFoodNotFound, Message: "no food with id " + req.FoodID + "; use 'weighin food search' to find one"}
		}
		return nil, fmt.Errorf("looking up food: %w", err)
	}

	e := &domain.FoodEntry{
		UserID:    req.UserID,
		Date:      req.Date,
		Meal:      req.Meal,
		Name:      fmt.Sprintf("%s (%gg)", facts.Name, req.Grams),
		Nutrients: facts.Portion(req.Grams),
	}
	if err := s.Add(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *foodLogService) GetByID(ctx context.Context, id string) (*domain.FoodEntry, error) {
	return s.foods.GetByID(ctx, id)
}

func (s *foodLogService) Update(ctx context.Context, e *domain.FoodEntry) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": e.UserID, "id": e.ID, "meal": string(e.Meal)}
	defer observeUseCase(ctx, s.observer, "update-food", startedAt, fields, &err)

	e.Date = domain.Day(e.Date)
	if err = e.Validate(); err != nil {
		return err
	}
	err = s.foods.Update(ctx, e)
	return err
}

func (s *foodLogService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"id": id}
	defer observeUseCase(ctx, s.observer, "delete-food", startedAt, fields, &err)

	err = s.foods.Delete(ctx, id)
	return err
}

func (s *foodLogService) ListByDate(ctx context.Context, userID string, date time.Time) ([]*domain.FoodEntry, error) {
	return s.foods.ListByDate(ctx, userID, date)
}

// CopyMeal duplicates every entry of one meal into another date and meal in
// a single transaction. Returns the number of entries copied.
func (s *foodLogService) CopyMeal(ctx context.Context, req app.CopyMealRequest) (copied int, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"user": req.UserID,
		"from": req.FromDate.Format(domain.DateLayout) + "/" + string(req.FromMeal),
		"to":   req.ToDate.Format(domain.DateLayout) + "/" + string(req.ToMeal),
	}
	defer func() {
		fields["copied"] = copied
		observeUseCase(ctx, s.observer, "copy-meal", startedAt, fields, &err)
	}()

	for _, m := range []domain.MealCategory{req.FromMeal, req.ToMeal} {
		if !domain.ValidMealCategories[m] {
			return 0, &domain.ValidationError{Field: "meal", Message: fmt.Sprintf("unknown meal category %q", m)}
		}
	}
	if domain.Day(req.FromDate).Equal(domain.Day(req.ToDate)) && req.FromMeal == req.ToMeal {
		return 0, &app.RequestError{Code: app.ErrInvalidRange, Message: "source and destination meal are the same"}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txFoods := repository.NewSQLFoodLogRepo(tx)
		src, err := txFoods.ListByMeal(ctx, req.UserID, req.FromDate, req.FromMeal)
		if err != nil {
			return err
		}
		for _, e := range src {
			dup := &domain.FoodEntry{
				UserID:    e.UserID,
				Date:      req.ToDate,
				Meal:      req.ToMeal,
				Name:      e.Name,
				Nutrients: e.Nutrients,
			}
			prepareNewEntry(dup)
			if err := txFoods.Create(ctx, dup); err != nil {
				return err
			}
		}
		copied = len(src)
		return nil
	})
	if err != nil {
		copied = 0
		return 0, err
	}
	return copied, nil
}

func prepareNewEntry(e *domain.FoodEntry) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Meal == "" {
		e.Meal = domain.MealSnacks
	}
	e.Date = domain.Day(e.Date)
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
}
