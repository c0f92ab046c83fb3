package db

import (
	"context"
	"fmt"
)

// Migrate runs all schema migrations. Statements are portable between
// SQLite and Postgres and safe to re-run.
func Migrate(db *DB) error {
	ctx := context.Background()
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		user_id        TEXT PRIMARY KEY,
		current_weight DOUBLE PRECISION NOT NULL CHECK(current_weight > 0),
		target_weight  DOUBLE PRECISION NOT NULL CHECK(target_weight > 0),
		unit           TEXT NOT NULL DEFAULT 'lb' CHECK(unit IN ('lb','kg')),
		height_in      DOUBLE PRECISION NOT NULL CHECK(height_in > 0),
		body_fat_pct   DOUBLE PRECISION,
		activity_level TEXT NOT NULL
		               CHECK(activity_level IN ('sedentary','lightly_active','moderately_active','very_active','extremely_active')),
		fat_ratio      DOUBLE PRECISION NOT NULL DEFAULT 0.25,
		start_date     TEXT NOT NULL,
		target_date    TEXT NOT NULL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS weight_logs (
		user_id    TEXT NOT NULL,
		log_date   TEXT NOT NULL,
		weight     DOUBLE PRECISION NOT NULL CHECK(weight > 0),
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, log_date)
	)`,

	`CREATE TABLE IF NOT EXISTS food_entries (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		log_date   TEXT NOT NULL,
		meal       TEXT NOT NULL DEFAULT 'snacks'
		           CHECK(meal IN ('breakfast','lunch','dinner','snacks')),
		name       TEXT NOT NULL,
		calories   DOUBLE PRECISION NOT NULL DEFAULT 0,
		protein_g  DOUBLE PRECISION NOT NULL DEFAULT 0,
		fat_g      DOUBLE PRECISION NOT NULL DEFAULT 0,
		carb_g     DOUBLE PRECISION NOT NULL DEFAULT 0,
		fiber_g    DOUBLE PRECISION NOT NULL DEFAULT 0,
		sodium_mg  DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_food_entries_user_date ON food_entries(user_id, log_date)`,
	`CREATE INDEX IF NOT EXISTS idx_weight_logs_user ON weight_logs(user_id)`,
}
