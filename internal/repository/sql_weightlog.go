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

// SQLWeightLogRepo implements WeightLogRepo on SQLite or Postgres.
type SQLWeightLogRepo struct {
	db db.DBTX
}

// NewSQLWeightLogRepo creates a new SQLWeightLogRepo.
func NewSQLWeightLogRepo(conn db.DBTX) *SQLWeightLogRepo {
	return &SQLWeightLogRepo{db: conn}
}

const weightLogColumns = `user_id, log_date, weight, note, created_at, updated_at`

// Upsert inserts the weigh-in or replaces the weight and note already logged
// for that date.
func (r *SQLWeightLogRepo) Upsert(ctx context.Context, e *domain.WeightEntry) error {
	now := nowUTC()
	query := `INSERT INTO weight_logs (` + weightLogColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, log_date) DO UPDATE SET
			weight     = excluded.weight,
			note       = excluded.note,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		e.UserID,
		dateToString(e.Date),
		e.Weight,
		e.Note,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting weight log: %w", err)
	}
	return nil
}

func (r *SQLWeightLogRepo) GetByDate(ctx context.Context, userID string, date time.Time) (*domain.WeightEntry, error) {
	query := `SELECT ` + weightLogColumns + ` FROM weight_logs WHERE user_id = ? AND log_date = ?`
	e, err := scanWeightEntry(r.db.QueryRowContext(ctx, query, userID, dateToString(date)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("weight log %s: %w", dateToString(date), ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLWeightLogRepo) LatestOnOrBefore(ctx context.Context, userID string, date time.Time) (*domain.WeightEntry, error) {
	query := `SELECT ` + weightLogColumns + ` FROM weight_logs
		WHERE user_id = ? AND log_date <= ?
		ORDER BY log_date DESC LIMIT 1`
	e, err := scanWeightEntry(r.db.QueryRowContext(ctx, query, userID, dateToString(date)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("weight log on or before %s: %w", dateToString(date), ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLWeightLogRepo) ListByUser(ctx context.Context, userID string) ([]*domain.WeightEntry, error) {
	query := `SELECT ` + weightLogColumns + ` FROM weight_logs WHERE user_id = ? ORDER BY log_date`
	return r.queryEntries(ctx, query, userID)
}

func (r *SQLWeightLogRepo) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.WeightEntry, error) {
	query := `SELECT ` + weightLogColumns + ` FROM weight_logs
		WHERE user_id = ? AND log_date >= ? AND log_date <= ?
		ORDER BY log_date`
	return r.queryEntries(ctx, query, userID, dateToString(from), dateToString(to))
}

func (r *SQLWeightLogRepo) DeleteByDate(ctx context.Context, userID string, date time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM weight_logs WHERE user_id = ? AND log_date = ?`,
		userID, dateToString(date))
	if err != nil {
		return fmt.Errorf("deleting weight log: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("weight log %s: %w", dateToString(date), ErrNotFound)
	}
	return nil
}

func (r *SQLWeightLogRepo) queryEntries(ctx context.Context, query string, args ...any) ([]*domain.WeightEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying weight logs: %w", err)
	}
	defer rows.Close()

	var entries []*domain.WeightEntry
	for rows.Next() {
		e, err := scanWeightEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating weight logs: %w", err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWeightEntry(s rowScanner) (*domain.WeightEntry, error) {
	var (
		e                    domain.WeightEntry
		date                 string
		createdAt, updatedAt string
	)
	if err := s.Scan(&e.UserID, &date, &e.Weight, &e.Note, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning weight log: %w", err)
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	e.Date = d
	e.CreatedAt = parseTimestamp(createdAt)
	e.UpdatedAt = parseTimestamp(updatedAt)
	return &e, nil
}
