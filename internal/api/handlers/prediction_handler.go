package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/medicare-app/backend/internal/api/middleware"
	"github.com/medicare-app/backend/internal/domain/entities"
)

// PredictionService defines the consultation operations used by the handler.
type PredictionService interface {
	Predict(ctx context.Context, userID string, selection []string) (*entities.PredictionResponse, error)
	ListHistory(ctx context.Context, userID string, limit, offset int) ([]*entities.HistoryRecord, error)
}

// PredictionHandler handles consultation requests.
type PredictionHandler struct {
	service PredictionService
}

// NewPredictionHandler creates a new prediction handler.
func NewPredictionHandler(service PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

type predictRequest struct {
	Symptoms []string `json:"symptoms"`
}

// Predict handles POST /api/predict. Anonymous requests are served but not
// recorded; a session cookie turns on history recording.
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var payload predictRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	userID := ""
	if session, ok := middleware.SessionFromContext(r.Context()); ok {
		userID = session.UserID
	}

	response, err := h.service.Predict(r.Context(), userID, payload.Symptoms)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, response)
}

// GetHistory handles GET /api/history
func (h *PredictionHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	limit := parseIntParam(r, "limit", 0)
	offset := parseIntParam(r, "offset", 0)

	records, err := h.service.ListHistory(r.Context(), session.UserID, limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if records == nil {
		records = []*entities.HistoryRecord{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"history": records,
		"count":   len(records),
	})
}

func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
