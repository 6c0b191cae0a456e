package services

import (
	"context"
	"strings"

	"github.com/medicare-app/backend/internal/catalog"
	"github.com/medicare-app/backend/internal/domain/entities"
	"github.com/medicare-app/backend/internal/domain/providers"
	"github.com/medicare-app/backend/internal/infrastructure/observability"
	apperrors "github.com/medicare-app/backend/pkg/errors"
)

const defaultSearchLimit = 10

// SymptomService exposes the catalog to the web layer: the grouped listing
// the selection page renders, and free-text search. Search prefers the
// Typesense index and falls back to the in-memory catalog match when the
// index is absent or unreachable.
type SymptomService struct {
	catalog *catalog.Catalog
	search  providers.SymptomSearchProvider
}

// NewSymptomService creates a new symptom service. search may be nil.
func NewSymptomService(cat *catalog.Catalog, search providers.SymptomSearchProvider) *SymptomService {
	return &SymptomService{catalog: cat, search: search}
}

// Categories returns the catalog grouped for display.
func (s *SymptomService) Categories(ctx context.Context) []entities.SymptomCategory {
	return s.catalog.Categories()
}

// Search finds symptoms matching a free-text query.
func (s *SymptomService) Search(ctx context.Context, query string, limit int) ([]entities.Symptom, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewValidationError("query is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	if s.search != nil {
		results, err := s.search.Search(ctx, query, limit)
		if err == nil {
			return results, nil
		}
		logger := observability.LoggerFromContext(ctx)
		logger.Warn().Err(err).Str("query", query).Msg("symptom index search failed, using catalog fallback")
	}

	return s.catalog.Match(query, limit), nil
}
