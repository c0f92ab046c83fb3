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

// SQLFoodLogRepo implements FoodLogRepo on SQLite or Postgres.
type SQLFoodLogRepo struct {
	db db.DBTX
}

// NewSQLFoodLogRepo creates a new SQLFoodLogRepo.
func NewSQLFoodLogRepo(conn db.DBTX) *SQLFoodLogRepo {
	return &SQLFoodLogRepo{db: conn}
}

const foodEntryColumns = `id, user_id, log_date, meal, name,
	calories, protein_g, fat_g, carb_g, fiber_g, sodium_mg, created_at, updated_at`

const nutrientSums = `COALESCE(SUM(calories), 0), COALESCE(SUM(protein_g), 0),
	COALESCE(SUM(fat_g), 0), COALESCE(SUM(carb_g), 0),
	COALESCE(SUM(fiber_g), 0), COALESCE(SUM(sodium_mg), 0)`

func (r *SQLFoodLogRepo) Create(ctx context.Context, e *domain.FoodEntry) error {
	query := `INSERT INTO food_entries (` + foodEntryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	n := e.Nutrients
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		dateToString(e.Date),
		string(e.Meal),
		e.Name,
		n.Calories, n.ProteinG, n.FatG, n.CarbG, n.FiberG, n.SodiumMg,
		e.CreatedAt.UTC().Format(time.RFC3339),
		e.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting food entry: %w", err)
	}
	return nil
}

func (r *SQLFoodLogRepo) GetByID(ctx context.Context, id string) (*domain.FoodEntry, error) {
	query := `SELECT ` + foodEntryColumns + ` FROM food_entries WHERE id = ?`
	e, err := scanFoodEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("food entry %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLFoodLogRepo) Update(ctx context.Context, e *domain.FoodEntry) error {
	query := `UPDATE food_entries SET log_date = ?, meal = ?, name = ?,
		calories = ?, protein_g = ?, fat_g = ?, carb_g = ?, fiber_g = ?, sodium_mg = ?,
		updated_at = ?
		WHERE id = ?`
	n := e.Nutrients
	res, err := r.db.ExecContext(ctx, query,
		dateToString(e.Date),
		string(e.Meal),
		e.Name,
		n.Calories, n.ProteinG, n.FatG, n.CarbG, n.FiberG, n.SodiumMg,
		nowUTC(),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating food entry: %w", err)
	}
	return expectOneRow(res, "food entry "+e.ID)
}

func (r *SQLFoodLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM food_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting food entry: %w", err)
	}
	return expectOneRow(res, "food entry "+id)
}

func (r *SQLFoodLogRepo) ListByDate(ctx context.Context, userID string, date time.Time) ([]*domain.FoodEntry, error) {
	query := `SELECT ` + foodEntryColumns + ` FROM food_entries
		WHERE user_id = ? AND log_date = ?
		ORDER BY CASE meal
			WHEN 'breakfast' THEN 0 WHEN 'lunch' THEN 1 WHEN 'dinner' THEN 2 ELSE 3 END,
			created_at, id`
	return r.queryEntries(ctx, query, userID, dateToString(date))
}

func (r *SQLFoodLogRepo) ListByMeal(ctx context.Context, userID string, date time.Time, meal domain.MealCategory) ([]*domain.FoodEntry, error) {
	query := `SELECT ` + foodEntryColumns + ` FROM food_entries
		WHERE user_id = ? AND log_date = ? AND meal = ?
		ORDER BY created_at, id`
	return r.queryEntries(ctx, query, userID, dateToString(date), string(meal))
}

// DailyTotals sums every entry logged for the date. A day with no entries
// sums to zero.
func (r *SQLFoodLogRepo) DailyTotals(ctx context.Context, userID string, date time.Time) (domain.NutrientTotals, error) {
	query := `SELECT ` + nutrientSums + ` FROM food_entries WHERE user_id = ? AND log_date = ?`
	var t domain.NutrientTotals
	err := r.db.QueryRowContext(ctx, query, userID, dateToString(date)).Scan(
		&t.Calories, &t.ProteinG, &t.FatG, &t.CarbG, &t.FiberG, &t.SodiumMg,
	)
	if err != nil {
		return domain.NutrientTotals{}, fmt.Errorf("summing daily totals: %w", err)
	}
	return t, nil
}

// TotalsByMeal sums the date's entries per meal. Meals with no entries are
// absent from the map.
func (r *SQLFoodLogRepo) TotalsByMeal(ctx context.Context, userID string, date time.Time) (map[domain.MealCategory]domain.NutrientTotals, error) {
	query := `SELECT meal, ` + nutrientSums + ` FROM food_entries
		WHERE user_id = ? AND log_date = ?
		GROUP BY meal`
	rows, err := r.db.QueryContext(ctx, query, userID, dateToString(date))
	if err != nil {
		return nil, fmt.Errorf("summing meal totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[domain.MealCategory]domain.NutrientTotals)
	for rows.Next() {
		var (
			meal string
			t    domain.NutrientTotals
		)
		if err := rows.Scan(&meal, &t.Calories, &t.ProteinG, &t.FatG, &t.CarbG, &t.FiberG, &t.SodiumMg); err != nil {
			return nil, fmt.Errorf("scanning meal totals: %w", err)
		}
		totals[domain.MealCategory(meal)] = t
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating meal totals: %w", err)
	}
	return totals, nil
}

func (r *SQLFoodLogRepo) queryEntries(ctx context.Context, query string, args ...any) ([]*domain.FoodEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying food entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.FoodEntry
	for rows.Next() {
		e, err := scanFoodEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating food entries: %w", err)
	}
	return entries, nil
}

func scanFoodEntry(s rowScanner) (*domain.FoodEntry, error) {
	var (
		e                    domain.FoodEntry
		date, meal           string
		createdAt, updatedAt string
	)
	n := &e.Nutrients
	err := s.Scan(
		&e.ID, &e.UserID, &date, &meal, &e.Name,
		&n.Calories, &n.ProteinG, &n.FatG, &n.CarbG, &n.FiberG, &n.SodiumMg,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning food entry: %w", err)
	}
	d, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	e.Date = d
	e.Meal = domain.MealCategory(meal)
	e.CreatedAt = parseTimestamp(createdAt)
	e.UpdatedAt = parseTimestamp(updatedAt)
	return &e, nil
}

func expectOneRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
