package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/medicare-app/backend/internal/domain/entities"
	"github.com/medicare-app/backend/pkg/config"
)

// AuthService defines the account operations used by the handler.
type AuthService interface {
	Signup(ctx context.Context, username, password string) (*entities.Session, error)
	Login(ctx context.Context, username, password string) (*entities.Session, error)
	Logout(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, username string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

// AuthHandler handles account and session endpoints. The session token only
// ever travels in an HttpOnly cookie.
type AuthHandler struct {
	service    AuthService
	cookieName string
	secure     bool
}

// NewAuthHandler creates a new auth handler. secure controls the cookie's
// Secure flag and should be true outside development.
func NewAuthHandler(service AuthService, sessionCfg *config.SessionConfig, secure bool) *AuthHandler {
	return &AuthHandler{
		service:    service,
		cookieName: sessionCfg.CookieName,
		secure:     secure,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	session, err := h.service.Signup(r.Context(), payload.Username, payload.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	respondWithJSON(w, http.StatusCreated, map[string]string{
		"user_id":  session.UserID,
		"username": session.Username,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	session, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	respondWithJSON(w, http.StatusOK, map[string]string{
		"user_id":  session.UserID,
		"username": session.Username,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		_ = h.service.Logout(r.Context(), cookie.Value)
	}

	h.clearSessionCookie(w)
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

type resetRequest struct {
	Username string `json:"username"`
}

// RequestPasswordReset handles POST /api/auth/reset/request. The response
// does not reveal whether the account exists.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var payload resetRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), payload.Username); err != nil {
		handleServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusAccepted, map[string]string{"status": "reset_requested"})
}

type resetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ConfirmPasswordReset handles POST /api/auth/reset/confirm
func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var payload resetConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.service.ConfirmPasswordReset(r.Context(), payload.Token, payload.NewPassword); err != nil {
		handleServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "password_updated"})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *entities.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
