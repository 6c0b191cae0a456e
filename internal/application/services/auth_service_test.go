package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicare-app/backend/internal/application/services"
	apperrors "github.com/medicare-app/backend/pkg/errors"
)

func newAuthFixture() (*services.AuthService, *stubUserRepo, *memoryCache, *stubMail) {
	users := newStubUserRepo()
	cache := newMemoryCache()
	mail := &stubMail{}
	svc := services.NewAuthService(users, cache, mail, time.Hour)
	return svc, users, cache, mail
}

func TestSignup_CreatesUserAndSession(t *testing.T) {
	svc, users, _, _ := newAuthFixture()

	session, err := svc.Signup(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "alice", session.Username)

	stored := users.byUsername["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
}

func TestSignup_DuplicateUsernameIsConflict(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), "alice", "another password")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeConflict))
}

func TestSignup_RejectsShortPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), "alice", "short")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestLogin_RoundTrip(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)

	session, err := svc.Login(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)

	resolved, err := svc.ResolveSession(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, resolved.UserID)
	assert.Equal(t, "alice", resolved.Username)
}

func TestLogin_BadCredentialsAreIndistinguishable(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Signup(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), "alice", "wrong password!")
	_, unknownUser := svc.Login(context.Background(), "mallory", "wrong password!")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogout_InvalidatesSession(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	session, err := svc.Signup(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.Token))

	_, err = svc.ResolveSession(context.Background(), session.Token)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestPasswordReset_RoundTrip(t *testing.T) {
	svc, _, _, mail := newAuthFixture()

	_, err := svc.Signup(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "alice"))
	require.Len(t, mail.sent, 1)

	// The token is the last word on the first line of the mail body.
	firstLine := strings.SplitN(mail.sent[0], "\n", 2)[0]
	fields := strings.Fields(firstLine)
	token := fields[len(fields)-1]

	require.NoError(t, svc.ConfirmPasswordReset(context.Background(), token, "a brand new password"))

	_, err = svc.Login(context.Background(), "alice", "correct horse battery")
	require.Error(t, err)

	_, err = svc.Login(context.Background(), "alice", "a brand new password")
	require.NoError(t, err)
}

func TestPasswordReset_TokenIsSingleUse(t *testing.T) {
	svc, _, _, mail := newAuthFixture()

	_, err := svc.Signup(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "alice"))

	firstLine := strings.SplitN(mail.sent[0], "\n", 2)[0]
	fields := strings.Fields(firstLine)
	token := fields[len(fields)-1]

	require.NoError(t, svc.ConfirmPasswordReset(context.Background(), token, "a brand new password"))

	err = svc.ConfirmPasswordReset(context.Background(), token, "yet another password")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestPasswordReset_UnknownUserIsSilent(t *testing.T) {
	svc, _, _, mail := newAuthFixture()

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "nobody"))
	assert.Empty(t, mail.sent)
}
