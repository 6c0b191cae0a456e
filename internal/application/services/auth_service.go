package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medicare-app/backend/internal/domain/entities"
	"github.com/medicare-app/backend/internal/domain/providers"
	"github.com/medicare-app/backend/internal/domain/repositories"
	apperrors "github.com/medicare-app/backend/pkg/errors"
)

const (
	sessionKeyPrefix    = "session:"
	resetKeyPrefix      = "password_reset:"
	resetTokenTTL       = 30 * time.Minute
	minPasswordLength   = 8
	maxUsernameLength   = 64
	sessionTokenEntropy = 32
)

// AuthService owns accounts and sessions. Sessions are opaque random tokens
// stored server-side in Redis; the cookie carries only the token.
type AuthService struct {
	users      repositories.UserRepository
	cache      providers.CacheProvider
	mail       providers.MailSender
	sessionTTL time.Duration
}

// NewAuthService creates a new auth service.
func NewAuthService(
	users repositories.UserRepository,
	cache providers.CacheProvider,
	mail providers.MailSender,
	sessionTTL time.Duration,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	return &AuthService{
		users:      users,
		cache:      cache,
		mail:       mail,
		sessionTTL: sessionTTL,
	}
}

// Signup registers a new account and opens a session for it. A taken
// username comes back as a Conflict error.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*entities.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewValidationError("username is required")
	}
	if len(username) > maxUsernameLength {
		return nil, apperrors.NewValidationError("username is too long")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &entities.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

// Login verifies credentials and opens a session. A bad username and a bad
// password produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entities.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("username and password are required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}

	return s.openSession(ctx, user)
}

// Logout invalidates a session token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}

// ResolveSession looks up the session behind a cookie token.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*entities.Session, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorizedError("no session token")
	}

	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil || len(data) == 0 {
		return nil, apperrors.NewUnauthorizedError("session expired or invalid")
	}

	session := &entities.Session{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, apperrors.NewInternalError("failed to decode session", err)
	}
	return session, nil
}

// RequestPasswordReset issues a short-lived reset token and mails it to the
// account. The response is identical whether or not the account exists.
func (s *AuthService) RequestPasswordReset(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return apperrors.NewValidationError("username is required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil
		}
		return err
	}

	token, err := randomToken()
	if err != nil {
		return apperrors.NewInternalError("failed to generate reset token", err)
	}

	ttlSeconds := int(resetTokenTTL.Seconds())
	if err := s.cache.Set(ctx, resetKeyPrefix+token, []byte(user.ID), ttlSeconds); err != nil {
		return apperrors.NewInternalError("failed to store reset token", err)
	}

	body := fmt.Sprintf("Use this token to reset your password: %s\nIt expires in %d minutes.",
		token, int(resetTokenTTL.Minutes()))
	if err := s.mail.Send(ctx, user.Username, "Password reset", body); err != nil {
		return apperrors.NewExternalError("failed to send reset mail", err)
	}
	return nil
}

// ConfirmPasswordReset consumes a reset token and sets the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return apperrors.NewValidationError("reset token is required")
	}
	if len(newPassword) < minPasswordLength {
		return apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	userID, err := s.cache.Get(ctx, resetKeyPrefix+token)
	if err != nil || len(userID) == 0 {
		return apperrors.NewUnauthorizedError("reset token expired or invalid")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.NewInternalError("failed to hash password", err)
	}

	if err := s.users.UpdatePassword(ctx, string(userID), string(hash)); err != nil {
		return err
	}

	// Token is single-use.
	_ = s.cache.Delete(ctx, resetKeyPrefix+token)
	return nil
}

func (s *AuthService) openSession(ctx context.Context, user *entities.User) (*entities.Session, error) {
	token, err := randomToken()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to generate session token", err)
	}

	session := &entities.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode session", err)
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+token, data, int(s.sessionTTL.Seconds())); err != nil {
		return nil, apperrors.NewInternalError("failed to store session", err)
	}

	return session, nil
}

func randomToken() (string, error) {
	buf := make([]byte, sessionTokenEntropy)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
