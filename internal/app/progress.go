package app

import (
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/targets"
)

type ProgressRequest struct {
	UserID string
	Now    time.Time
}

type ProgressResponse struct {
	Profile *domain.Profile
	Result  targets.ProgressResult
	Window  int
}

type TrajectoryRequest struct {
	UserID string
	From   time.Time
	To     time.Time
}

// TrajectoryRow pairs the allowed weight on a day with the weigh-in logged
// that day, if any.
type TrajectoryRow struct {
	Point  targets.TrajectoryPoint
	Logged *float64
}

type TrajectoryResponse struct {
	Profile *domain.Profile
	Rows    []TrajectoryRow
}
