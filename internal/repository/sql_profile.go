package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/weighin/internal/db"
	"github.com/alexanderramin/weighin/internal/domain"
)

// SQLProfileRepo implements ProfileRepo on SQLite or Postgres.
type SQLProfileRepo struct {
	db db.DBTX
}

// NewSQLProfileRepo creates a new SQLProfileRepo.
func NewSQLProfileRepo(conn db.DBTX) *SQLProfileRepo {
	return &SQLProfileRepo{db: conn}
}

func (r *SQLProfileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT user_id, current_weight, target_weight, unit, height_in, body_fat_pct,
		activity_level, fat_ratio, start_date, target_date, created_at, updated_at
		FROM profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var (
		p                     domain.Profile
		unit, activity        string
		bodyFat               sql.NullFloat64
		startDate, targetDate string
		createdAt, updatedAt  string
	)
	err := row.Scan(
		&p.UserID,
		&p.CurrentWeight,
		&p.TargetWeight,
		&unit,
		&p.HeightIn,
		&bodyFat,
		&activity,
		&p.FatRatio,
		&startDate,
		&targetDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	p.Unit = domain.WeightUnit(unit)
	p.ActivityLevel = domain.ActivityLevel(activity)
	p.BodyFatPct = parseNullableFloat(bodyFat)
	if p.StartDate, err = parseDate(startDate); err != nil {
		return nil, err
	}
	if p.TargetDate, err = parseDate(targetDate); err != nil {
		return nil, err
	}
	p.CreatedAt = parseTimestamp(createdAt)
	p.UpdatedAt = parseTimestamp(updatedAt)
	return &p, nil
}

func (r *SQLProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	now := nowUTC()
	query := `INSERT INTO profiles (user_id, current_weight, target_weight, unit, height_in,
		body_fat_pct, activity_level, fat_ratio, start_date, target_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			current_weight = excluded.current_weight,
			target_weight  = excluded.target_weight,
			unit           = excluded.unit,
			height_in      = excluded.height_in,
			body_fat_pct   = excluded.body_fat_pct,
			activity_level = excluded.activity_level,
			fat_ratio      = excluded.fat_ratio,
			start_date     = excluded.start_date,
			target_date    = excluded.target_date,
			updated_at     = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.CurrentWeight,
		p.TargetWeight,
		string(p.Unit),
		p.HeightIn,
		nullableFloatToValue(p.BodyFatPct),
		string(p.ActivityLevel),
		p.FatRatio,
		dateToString(p.StartDate),
		dateToString(p.TargetDate),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func (r *SQLProfileRepo) RebaseCurrentWeight(ctx context.Context, userID string, weight float64, asOf time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET current_weight = ?, start_date = ?, updated_at = ? WHERE user_id = ?`,
		weight, dateToString(asOf), nowUTC(), userID)
	if err != nil {
		return fmt.Errorf("updating current weight: %w", err)
	}
	return expectOneRow(res, "profile "+userID)
}
