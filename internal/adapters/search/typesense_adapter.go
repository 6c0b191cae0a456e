package search

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/medicare-app/backend/internal/domain/entities"
	"github.com/medicare-app/backend/internal/infrastructure/clients/typesense"
)

const collectionName = typesense.SymptomsCollection

// TypesenseAdapter implements fuzzy symptom lookup over a Typesense index.
// The index is rebuilt from the catalog at startup; the catalog stays the
// source of truth.
type TypesenseAdapter struct {
	client *typesense.Client
}

// NewTypesenseAdapter creates a new Typesense search adapter
func NewTypesenseAdapter(client *typesense.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the symptoms collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	return a.client.InitSchema(ctx)
}

// IndexCatalog upserts every catalog entry into the symptoms collection.
func (a *TypesenseAdapter) IndexCatalog(ctx context.Context, symptoms []entities.Symptom) error {
	for _, symptom := range symptoms {
		document := map[string]interface{}{
			"id":           symptom.CanonicalID,
			"canonical_id": symptom.CanonicalID,
			"display_name": symptom.DisplayName,
		}
		if _, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document); err != nil {
			return fmt.Errorf("failed to index symptom %s: %w", symptom.CanonicalID, err)
		}
	}
	return nil
}

// Search returns matching symptoms, best match first.
func (a *TypesenseAdapter) Search(ctx context.Context, query string, limit int) ([]entities.Symptom, error) {
	if limit <= 0 {
		limit = 10
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("display_name,canonical_id"),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search symptoms: %w", err)
	}

	symptoms := []entities.Symptom{}
	if result.Hits == nil {
		return symptoms, nil
	}
	for _, hit := range *result.Hits {
		doc := *hit.Document

		symptom := entities.Symptom{}
		if val, ok := doc["canonical_id"].(string); ok {
			symptom.CanonicalID = val
		}
		if val, ok := doc["display_name"].(string); ok {
			symptom.DisplayName = val
		}
		symptoms = append(symptoms, symptom)
	}

	return symptoms, nil
}
