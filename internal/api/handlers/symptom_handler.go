package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/medicare-app/backend/internal/domain/entities"
)

// SymptomService defines the catalog operations used by the handler.
type SymptomService interface {
	Categories(ctx context.Context) []entities.SymptomCategory
	Search(ctx context.Context, query string, limit int) ([]entities.Symptom, error)
}

// SymptomHandler serves the symptom catalog.
type SymptomHandler struct {
	service SymptomService
}

// NewSymptomHandler creates a new symptom handler.
func NewSymptomHandler(service SymptomService) *SymptomHandler {
	return &SymptomHandler{service: service}
}

// ListSymptoms handles GET /api/symptoms
func (h *SymptomHandler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	categories := h.service.Categories(r.Context())

	total := 0
	for _, category := range categories {
		total += len(category.Symptoms)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
		"count":      total,
	})
}

// SearchSymptoms handles GET /api/symptoms/search
func (h *SymptomHandler) SearchSymptoms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "limit must be a number")
			return
		}
		limit = parsed
	}

	symptoms, err := h.service.Search(r.Context(), query, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"symptoms": symptoms,
		"count":    len(symptoms),
	})
}
