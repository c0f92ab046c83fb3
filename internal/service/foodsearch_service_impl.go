package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/fooddb"
)

type foodSearchService struct {
	provider  fooddb.Provider
	reference *fooddb.ReferenceCatalog
}

func NewFoodSearchService(provider fooddb.Provider, reference *fooddb.ReferenceCatalog) FoodSearchService {
	return &foodSearchService{provider: provider, reference: reference}
}

func (s *foodSearchService) Search(ctx context.Context, query string, limit int) ([]domain.FoodFacts, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &domain.ValidationError{Field: "query", Message: "search text is required"}
	}
	return s.provider.Search(ctx, query, limit)
}

func (s *foodSearchService) Get(ctx context.Context, id string) (*domain.FoodFacts, error) {
	return s.provider.Get(ctx, id)
}

func (s *foodSearchService) Reference() []fooddb.ReferenceGroup {
	if s.reference == nil {
		return nil
	}
	return s.reference.Groups()
}
