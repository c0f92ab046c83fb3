package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/db"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/repository"
)

type weightLogService struct {
	weights  repository.WeightLogRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewWeightLogService(weights repository.WeightLogRepo, uow db.UnitOfWork, observers ...UseCaseObserver) WeightLogService {
	return &weightLogService{weights: weights, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// LogWeight stores the weigh-in, replacing any entry for the same date.
// With UpdateProfile the profile's current weight and start date move to
// this weigh-in in the same transaction, so every target recomputes from it.
func (s *weightLogService) LogWeight(ctx context.Context, req app.LogWeightRequest) (err error) {
	startedAt := time.Now().UTC()
	e := req.Entry
	fields := map[string]any{
		"user":           e.UserID,
		"date":           e.Date.Format(domain.DateLayout),
		"update_profile": req.UpdateProfile,
	}
	defer observeUseCase(ctx, s.observer, "log-weight", startedAt, fields, &err)

	today := req.Today
	if today.IsZero() {
		today = time.Now()
	}
	e.Date = domain.Day(e.Date)
	if err = e.Validate(today); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLProfileRepo(tx)
		if req.UpdateProfile {
			p, err := txProfiles.Get(ctx, e.UserID)
			if errors.Is(err, repository.ErrNotFound) {
				return app.ProfileMissing(e.UserID)
			}
			if err != nil {
				return err
			}
			if err := checkRebase(p, e.Date); err != nil {
				return err
			}
		}

		if err := repository.NewSQLWeightLogRepo(tx).Upsert(ctx, e); err != nil {
			return err
		}
		if !req.UpdateProfile {
			return nil
		}
		return txProfiles.RebaseCurrentWeight(ctx, e.UserID, e.Weight, e.Date)
	})
}

// checkRebase reports whether a weigh-in on date may become the profile's
// new starting point. It must not move the start date backwards and must
// leave the target date strictly after it.
func checkRebase(p *domain.Profile, date time.Time) error {
	start, target := domain.Day(p.StartDate), domain.Day(p.TargetDate)
	if date.Before(start) {
		return &domain.ValidationError{
			Field: "date",
			Message: fmt.Sprintf("weigh-in on %s is older than the profile start date %s; log it without --update-profile",
				date.Format(domain.DateLayout), start.Format(domain.DateLayout)),
		}
	}
	if !target.After(date) {
		return &domain.ValidationError{
			Field: "date",
			Message: fmt.Sprintf("weigh-in on %s is on or after the target date %s; set a new goal with 'weighin profile set'",
				date.Format(domain.DateLayout), target.Format(domain.DateLayout)),
		}
	}
	return nil
}

func (s *weightLogService) List(ctx context.Context, userID string) ([]*domain.WeightEntry, error) {
	return s.weights.ListByUser(ctx, userID)
}

func (s *weightLogService) GetByDate(ctx context.Context, userID string, date time.Time) (*domain.WeightEntry, error) {
	return s.weights.GetByDate(ctx, userID, date)
}

func (s *weightLogService) Delete(ctx context.Context, userID string, date time.Time) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": userID, "date": date.Format(domain.DateLayout)}
	defer observeUseCase(ctx, s.observer, "delete-weight", startedAt, fields, &err)

	err = s.weights.DeleteByDate(ctx, userID, date)
	return err
}
