package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, observers ...UseCaseObserver) ProfileService {
	return &profileService{profiles: profiles, observer: useCaseObserverOrNoop(observers)}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	return loadProfile(ctx, s.profiles, userID)
}

func (s *profileService) Save(ctx context.Context, p *domain.Profile, today time.Time) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": p.UserID}
	defer observeUseCase(ctx, s.observer, "save-profile", startedAt, fields, &err)

	p.StartDate = domain.Day(today)
	p.ApplyDefaults(today)
	if err = p.Validate(today); err != nil {
		return err
	}
	fields["days_to_goal"] = domain.DaysBetween(p.StartDate, p.TargetDate)

	if err = s.profiles.Upsert(ctx, p); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// loadProfile maps a missing profile to an actionable request error.
func loadProfile(ctx context.Context, profiles repository.ProfileRepo, userID string) (*domain.Profile, error) {
	p, err := profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app.ProfileMissing(userID)
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}
