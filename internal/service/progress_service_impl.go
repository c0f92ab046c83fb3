package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/weighin/internal/app"
	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/repository"
	"github.com/alexanderramin/weighin/internal/targets"
)

type progressService struct {
	profiles     repository.ProfileRepo
	weights      repository.WeightLogRepo
	window       int
	tolerancePct float64
	observer     UseCaseObserver
}

func NewProgressService(
	profiles repository.ProfileRepo,
	weights repository.WeightLogRepo,
	window int,
	tolerancePct float64,
	observers ...UseCaseObserver,
) ProgressService {
	if window <= 0 {
		window = targets.DefaultTrendWindow
	}
	if tolerancePct <= 0 {
		tolerancePct = targets.DefaultTolerancePct
	}
	return &progressService{
		profiles:     profiles,
		weights:      weights,
		window:       window,
		tolerancePct: tolerancePct,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) Progress(ctx context.Context, req app.ProgressRequest) (resp *app.ProgressResponse, err error) {
	startedAt := time.Now().UTC()
	now := req.Now
	if now.IsZero() {
		now = startedAt
	}
	fields := map[string]any{"user": req.UserID}
	defer observeUseCase(ctx, s.observer, "progress", startedAt, fields, &err)

	profile, err := loadProfile(ctx, s.profiles, req.UserID)
	if err != nil {
		return nil, err
	}
	logged, err := s.weights.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading weight history: %w", err)
	}

	entries := make([]domain.WeightEntry, 0, len(logged))
	for _, e := range logged {
		entries = append(entries, *e)
	}
	result := targets.EvaluateProgress(targets.ProgressInput{
		Profile:      profile,
		Entries:      entries,
		Now:          now,
		Window:       s.window,
		TolerancePct: s.tolerancePct,
	})
	fields["status"] = string(result.Status)
	fields["points"] = result.PointsUsed

	return &app.ProgressResponse{Profile: profile, Result: result, Window: s.window}, nil
}

// Trajectory defaults to the profile's start and goal dates when the range
// is left empty.
func (s *progressService) Trajectory(ctx context.Context, req app.TrajectoryRequest) (_ *app.TrajectoryResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user": req.UserID}
	defer observeUseCase(ctx, s.observer, "trajectory", startedAt, fields, &err)

	profile, err := loadProfile(ctx, s.profiles, req.UserID)
	if err != nil {
		return nil, err
	}

	from, to := req.From, req.To
	if from.IsZero() {
		from = profile.StartDate
	}
	if to.IsZero() {
		to = profile.TargetDate
	}
	from, to = domain.Day(from), domain.Day(to)
	fields["from"] = from.Format(domain.DateLayout)
	fields["to"] = to.Format(domain.DateLayout)
	if to.Before(from) {
		return nil, &app.RequestError{
			Code:    app.ErrInvalidRange,
			Message: fmt.Sprintf("end date %s is before start date %s", to.Format(domain.DateLayout), from.Format(domain.DateLayout)),
		}
	}

	logged, err := s.weights.ListRange(ctx, req.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading weight history: %w", err)
	}
	byDate := make(map[string]float64, len(logged))
	for _, e := range logged {
		byDate[e.Date.Format(domain.DateLayout)] = e.Weight
	}

	points := targets.Trajectory(profile, from, to)
	rows := make([]app.TrajectoryRow, 0, len(points))
	for _, p := range points {
		row := app.TrajectoryRow{Point: p}
		if w, ok := byDate[p.Date.Format(domain.DateLayout)]; ok {
			row.Logged = &w
		}
		rows = append(rows, row)
	}
	fields["points"] = len(rows)
	return &app.TrajectoryResponse{Profile: profile, Rows: rows}, nil
}
