package targets

import (
	"math"
	"time"

	"github.com/alexanderramin/weighin/internal/domain"
)

// DayContext pairs a date with the calendar days left until the goal date.
type DayContext struct {
	Date          time.Time
	DaysRemaining int
}

// NewDayContext derives the DayContext for date against the profile's goal date.
func NewDayContext(p *domain.Profile, date time.Time) DayContext {
	return DayContext{
		Date:          domain.Day(date),
		DaysRemaining: DaysRemaining(p.TargetDate, date),
	}
}

// DaysRemaining returns targetDate minus date in whole calendar days.
func DaysRemaining(targetDate, date time.Time) int {
	return domain.DaysBetween(date, targetDate)
}

// TrajectoryPoint is the allowed weight on one calendar day.
type TrajectoryPoint struct {
	Date          time.Time
	DaysRemaining int
	Tier          TierKind
	AllowedWeight float64
}

// AllowedWeight returns the allowed weight on date, in the profile's unit.
//
// Inside the cutting window (0..3 days out) the tier allowance is applied to
// the target weight. Further out, weight is interpolated linearly from
// (StartDate, CurrentWeight) to (TargetDate, TargetWeight), clamped to the
// segment. For loss goals the linear part never drops below the weight the
// cutting window opens at, so the curve does not dip and climb back at day 3.
// After the goal date the curve stays at the target weight.
func AllowedWeight(p *domain.Profile, date time.Time) float64 {
	d := DaysRemaining(p.TargetDate, date)
	if d < 0 {
		return p.TargetWeight
	}
	if InCuttingWindow(d) {
		return p.TargetWeight * (1 + CuttingScheduleFor(d).Allowance)
	}

	span := domain.DaysBetween(p.StartDate, p.TargetDate)
	if span < 1 {
		span = 1
	}
	progress := 1 - float64(d)/float64(span)
	progress = math.Max(0, math.Min(1, progress))
	w := p.CurrentWeight + (p.TargetWeight-p.CurrentWeight)*progress

	if p.LosingWeight() {
		entry := cuttingEntryWeight(p)
		if entry < p.CurrentWeight && w < entry {
			w = entry
		}
	}
	return w
}

// cuttingEntryWeight is the allowed weight on the first day of the cutting window.
func cuttingEntryWeight(p *domain.Profile) float64 {
	return p.TargetWeight * (1 + CuttingScheduleFor(CuttingWindowDays).Allowance)
}

// Trajectory returns one point per calendar day in [from, to]. Returns nil
// when to is before from.
func Trajectory(p *domain.Profile, from, to time.Time) []TrajectoryPoint {
	start, end := domain.Day(from), domain.Day(to)
	if end.Before(start) {
		return nil
	}

	points := make([]TrajectoryPoint, 0, domain.DaysBetween(start, end)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		d := DaysRemaining(p.TargetDate, day)
		points = append(points, TrajectoryPoint{
			Date:          day,
			DaysRemaining: d,
			Tier:          ClassifyDaysRemaining(d),
			AllowedWeight: AllowedWeight(p, day),
		})
	}
	return points
}
