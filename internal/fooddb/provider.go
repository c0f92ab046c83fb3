// Package fooddb looks up per-100 g nutrition facts. The engine only sees
// domain.FoodFacts; the raw source rows never leave this package.
package fooddb

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/weighin/internal/domain"
)

// DefaultSearchLimit caps a search when the caller passes a non-positive limit.
const DefaultSearchLimit = 20

// Provider is a keyed source of nutrition facts.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]domain.FoodFacts, error)
	Get(ctx context.Context, id string) (*domain.FoodFacts, error)
}

// Chain queries providers in order. Search returns the first non-empty result;
// Get returns the first provider that knows the id.
type Chain []Provider

func (c Chain) Search(ctx context.Context, query string, limit int) ([]domain.FoodFacts, error) {
	for _, p := range c {
		foods, err := p.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		if len(foods) > 0 {
			return foods, nil
		}
	}
	return nil, nil
}

func (c Chain) Get(ctx context.Context, id string) (*domain.FoodFacts, error) {
	for _, p := range c {
		f, err := p.Get(ctx, id)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("food %s: %w", id, domain.ErrNotFound)
}

// Open returns the FDC catalog backed by the reference list when fdcPath is
// set, and the reference list alone otherwise. The returned close func
// releases the FDC database.
func Open(fdcPath string) (Provider, func() error, error) {
	ref, err := LoadReference()
	if err != nil {
		return nil, nil, err
	}
	if fdcPath == "" {
		return ref, func() error { return nil }, nil
	}
	fdc, err := OpenFDC(fdcPath)
	if err != nil {
		return nil, nil, err
	}
	return Chain{fdc, ref}, fdc.Close, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	return limit
}
