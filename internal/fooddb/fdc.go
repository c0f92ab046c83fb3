package fooddb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/weighin/internal/domain"
	_ "modernc.org/sqlite"
)

// USDA FoodData Central nutrient ids.
const (
	nutrientEnergy  = 1008
	nutrientProtein = 1003
	nutrientFat     = 1004
	nutrientCarb    = 1005
	nutrientFiber   = 1079
	nutrientSodium  = 1093
)

// FDCPrefix marks ids that belong to the FoodData Central catalog.
const FDCPrefix = "fdc:"

// FDCCatalog reads a USDA FoodData Central SQLite export (tables food and
// food_nutrient). Foundation foods rank first in search results.
type FDCCatalog struct {
	db *sql.DB
}

// OpenFDC opens an existing FDC database file.
func OpenFDC(path string) (*FDCCatalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: food database %s: %v", domain.ErrConfiguration, path, err)
	}
	conn, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("opening food database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening food database: %w", err)
	}
	return NewFDCCatalog(conn), nil
}

// NewFDCCatalog wraps an already-open FDC database.
func NewFDCCatalog(conn *sql.DB) *FDCCatalog {
	return &FDCCatalog{db: conn}
}

func (c *FDCCatalog) Close() error {
	return c.db.Close()
}

var factsSelect = fmt.Sprintf(`SELECT f.fdc_id, f.description, COALESCE(f.data_type, ''),
	MAX(CASE WHEN fn.nutrient_id = %d THEN fn.amount END),
	MAX(CASE WHEN fn.nutrient_id = %d THEN fn.amount END),
	MAX(CASE WHEN fn.nutrient_id = %d THEN fn.amount END),
	MAX(CASE WHEN fn.nutrient_id = %d THEN fn.amount END),
	MAX(CASE WHEN fn.nutrient_id = %d THEN fn.amount END),
	MAX(CASE WHEN fn.nutrient_id = %d THEN fn.amount END)
	FROM food f
	LEFT JOIN food_nutrient fn
		ON fn.fdc_id = f.fdc_id
		AND fn.amount IS NOT NULL
		AND fn.nutrient_id IN (%d, %d, %d, %d, %d, %d)`,
	nutrientEnergy, nutrientProtein, nutrientFat, nutrientCarb, nutrientFiber, nutrientSodium,
	nutrientEnergy, nutrientProtein, nutrientFat, nutrientCarb, nutrientFiber, nutrientSodium)

const factsGroup = ` GROUP BY f.fdc_id, f.description, f.data_type`

func (c *FDCCatalog) Search(ctx context.Context, query string, limit int) ([]domain.FoodFacts, error) {
	q := factsSelect + ` WHERE f.description LIKE ?` + factsGroup + `
		ORDER BY CASE WHEN f.data_type = 'foundation_food' THEN 1 ELSE 2 END, f.description
		LIMIT ?`
	rows, err := c.db.QueryContext(ctx, q, "%"+strings.TrimSpace(query)+"%", normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching foods: %w", err)
	}
	defer rows.Close()

	var out []domain.FoodFacts
	for rows.Next() {
		f, err := scanFacts(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating foods: %w", err)
	}
	return out, nil
}

// Get accepts "fdc:<id>" or a bare numeric FDC id.
func (c *FDCCatalog) Get(ctx context.Context, id string) (*domain.FoodFacts, error) {
	fdcID, err := strconv.ParseInt(strings.TrimPrefix(id, FDCPrefix), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an FDC id", domain.ErrInvalidInput, id)
	}
	rows, err := c.db.QueryContext(ctx, factsSelect+` WHERE f.fdc_id = ?`+factsGroup, fdcID)
	if err != nil {
		return nil, fmt.Errorf("loading food %d: %w", fdcID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("loading food %d: %w", fdcID, err)
		}
		return nil, fmt.Errorf("food %d: %w", fdcID, domain.ErrNotFound)
	}
	f, err := scanFacts(rows)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func scanFacts(rows *sql.Rows) (domain.FoodFacts, error) {
	var (
		id                                 int64
		name, dataType                     string
		kcal, protein, fat, carb, fib, sod sql.NullFloat64
	)
	if err := rows.Scan(&id, &name, &dataType, &kcal, &protein, &fat, &carb, &fib, &sod); err != nil {
		return domain.FoodFacts{}, fmt.Errorf("scanning food: %w", err)
	}
	f := domain.FoodFacts{
		ID:     FDCPrefix + strconv.FormatInt(id, 10),
		Name:   name,
		Source: "fdc",
		Note:   dataType,
		Per100g: domain.NutrientTotals{
			Calories: kcal.Float64,
			ProteinG: protein.Float64,
			FatG:     fat.Float64,
			CarbG:    carb.Float64,
			FiberG:   fib.Float64,
			SodiumMg: sod.Float64,
		},
	}
	if !kcal.Valid {
		f.Note = strings.TrimSpace(f.Note + " (no energy value)")
	}
	return f, nil
}
