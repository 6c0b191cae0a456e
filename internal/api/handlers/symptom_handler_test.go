package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicare-app/backend/internal/api/handlers"
	"github.com/medicare-app/backend/internal/domain/entities"
	apperrors "github.com/medicare-app/backend/pkg/errors"
)

type stubSymptomService struct {
	categories []entities.SymptomCategory
	results    []entities.Symptom
	searchErr  error
	lastQuery  string
	lastLimit  int
}

func (s *stubSymptomService) Categories(ctx context.Context) []entities.SymptomCategory {
	return s.categories
}

func (s *stubSymptomService) Search(ctx context.Context, query string, limit int) ([]entities.Symptom, error) {
	s.lastQuery = query
	s.lastLimit = limit
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return s.results, nil
}

func TestSymptomHandler_ListSymptoms(t *testing.T) {
	service := &stubSymptomService{categories: []entities.SymptomCategory{
		{Name: "General", Symptoms: []entities.Symptom{
			{CanonicalID: "high_fever", DisplayName: "High Fever"},
			{CanonicalID: "fatigue", DisplayName: "Fatigue"},
		}},
		{Name: "Other", Symptoms: []entities.Symptom{
			{CanonicalID: "itching", DisplayName: "Itching"},
		}},
	}}
	handler := handlers.NewSymptomHandler(service)

	req := httptest.NewRequest("GET", "/api/symptoms", nil)
	w := httptest.NewRecorder()
	handler.ListSymptoms(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Categories []entities.SymptomCategory `json:"categories"`
		Count      int                        `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Len(t, response.Categories, 2)
	assert.Equal(t, 3, response.Count)
}

func TestSymptomHandler_SearchSymptoms(t *testing.T) {
	service := &stubSymptomService{results: []entities.Symptom{
		{CanonicalID: "headache", DisplayName: "Headache"},
	}}
	handler := handlers.NewSymptomHandler(service)

	req := httptest.NewRequest("GET", "/api/symptoms/search?q=head&limit=5", nil)
	w := httptest.NewRecorder()
	handler.SearchSymptoms(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "head", service.lastQuery)
	assert.Equal(t, 5, service.lastLimit)
}

func TestSymptomHandler_SearchSymptoms_EmptyQuery(t *testing.T) {
	service := &stubSymptomService{searchErr: apperrors.NewValidationError("query is required")}
	handler := handlers.NewSymptomHandler(service)

	req := httptest.NewRequest("GET", "/api/symptoms/search", nil)
	w := httptest.NewRecorder()
	handler.SearchSymptoms(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSymptomHandler_SearchSymptoms_BadLimit(t *testing.T) {
	handler := handlers.NewSymptomHandler(&stubSymptomService{})

	req := httptest.NewRequest("GET", "/api/symptoms/search?q=head&limit=abc", nil)
	w := httptest.NewRecorder()
	handler.SearchSymptoms(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
