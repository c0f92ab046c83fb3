package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/repository"
	"github.com/alexanderramin/weighin/internal/targets"
)

type dayService struct {
	profiles repository.ProfileRepo
	weights  repository.WeightLogRepo
	foods    repository.FoodLogRepo
	calc     *targets.Calculator
	adjust   bool
	observer UseCaseObserver
}

// NewDayService computes a day's targets fresh on every call. With adjust
// set, calories follow the latest weigh-in against the trajectory.
func NewDayService(
	profiles repository.ProfileRepo,
	weights repository.WeightLogRepo,
	foods repository.FoodLogRepo,
	calc *targets.Calculator,
	adjust bool,
	observers ...UseCaseObserver,
) DayService {
	if calc == nil {
		calc = targets.NewCalculator(nil)
	}
	return &dayService{
		profiles: profiles,
		weights:  weights,
		foods:    foods,
		calc:     calc,
		adjust:   adjust,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dayService) Day(ctx context.Context, req app.TargetsRequest) (view *app.DayView, err error) {
	startedAt := time.Now().UTC()
	date := domain.Day(req.Date)
	fields := map[string]any{"user": req.UserID, "date": date.Format(domain.DateLayout)}
	defer observeUseCase(ctx, s.observer, "day-targets", startedAt, fields, &err)

	profile, err := loadProfile(ctx, s.profiles, req.UserID)
	if err != nil {
		return nil, err
	}

	base, err := s.calc.ComputeTargets(profile, date)
	if err != nil {
		return nil, fmt.Errorf("computing targets: %w", err)
	}
	view = &app.DayView{
		Profile:       profile,
		Date:          date,
		Baseline:      base,
		Targets:       base,
		AllowedWeight: targets.AllowedWeight(profile, date),
	}
	fields["tier"] = string(base.Tier)
	fields["days_remaining"] = base.DaysRemaining

	if s.adjust && !req.SkipAdjustment {
		latest, err := optionalWeight(s.weights.LatestOnOrBefore(ctx, req.UserID, date))
		if err != nil {
			return nil, err
		}
		view.Targets, view.Adjustment, err = s.calc.AdjustForProgress(profile, base, latest)
		if err != nil {
			return nil, fmt.Errorf("adjusting targets: %w", err)
		}
		fields["adjustment"] = string(view.Adjustment.Reason)
	}

	if view.WeighIn, err = optionalWeight(s.weights.GetByDate(ctx, req.UserID, date)); err != nil {
		return nil, err
	}
	if view.Consumed, err = s.foods.DailyTotals(ctx, req.UserID, date); err != nil {
		return nil, err
	}
	if view.ByMeal, err = s.foods.TotalsByMeal(ctx, req.UserID, date); err != nil {
		return nil, err
	}
	if view.Entries, err = s.foods.ListByDate(ctx, req.UserID, date); err != nil {
		return nil, err
	}
	view.Remaining = app.Remaining(view.Targets, view.Consumed)
	return view, nil
}

// optionalWeight turns a not-found lookup into a nil entry.
func optionalWeight(e *domain.WeightEntry, err error) (*domain.WeightEntry, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return e, err
}
