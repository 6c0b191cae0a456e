package providers

import (
	"context"

	"github.com/medicare-app/backend/internal/domain/entities"
)

// SymptomSearchProvider serves fuzzy lookups over the symptom catalog for
// the checklist UI. Optional: when no index is configured the catalog's
// in-memory matching is used instead.
type SymptomSearchProvider interface {
	// IndexCatalog (re)indexes the full catalog. Called once at startup.
	IndexCatalog(ctx context.Context, symptoms []entities.Symptom) error

	// Search returns matching symptoms, best match first.
	Search(ctx context.Context, query string, limit int) ([]entities.Symptom, error)
}
