//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicare-app/backend/internal/adapters/database"
	"github.com/medicare-app/backend/internal/domain/entities"
)

func createTestUser(t *testing.T, userRepo interface {
	Create(ctx context.Context, user *entities.User) error
}) *entities.User {
	t.Helper()

	now := time.Now().UTC()
	user := &entities.User{
		ID:           uuid.New().String(),
		Username:     "it-" + uuid.New().String()[:8],
		PasswordHash: "$2a$10$integrationtesthashvalue",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, userRepo.Create(context.Background(), user))
	return user
}

func TestHistoryAdapter_CreateAndList(t *testing.T) {
	client := newTestPostgresClient(t)
	defer client.Close()

	userRepo := database.NewUserAdapter(client)
	historyRepo := database.NewHistoryAdapter(client)
	user := createTestUser(t, userRepo)

	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	first := &entities.HistoryRecord{
		UserID:     user.ID,
		Symptoms:   "Itching, Skin Rash",
		Disease:    "Fungal infection",
		Confidence: 0.91,
		CreatedAt:  base.Add(-time.Hour),
	}
	firstID, err := historyRepo.Create(ctx, first)
	require.NoError(t, err)
	assert.Positive(t, firstID)

	second := &entities.HistoryRecord{
		UserID:     user.ID,
		Symptoms:   "Headache",
		Disease:    "Migraine",
		Confidence: 0.77,
		CreatedAt:  base,
	}
	secondID, err := historyRepo.Create(ctx, second)
	require.NoError(t, err)
	assert.Greater(t, secondID, firstID)

	records, err := historyRepo.ListByUser(ctx, user.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "Migraine", records[0].Disease)
	assert.Equal(t, "Fungal infection", records[1].Disease)
}

func TestHistoryAdapter_SameTimestampOrdersByID(t *testing.T) {
	client := newTestPostgresClient(t)
	defer client.Close()

	userRepo := database.NewUserAdapter(client)
	historyRepo := database.NewHistoryAdapter(client)
	user := createTestUser(t, userRepo)

	ctx := context.Background()
	at := time.Now().UTC().Truncate(time.Microsecond)

	var lastID int64
	for _, disease := range []string{"GERD", "Migraine", "Fungal infection"} {
		id, err := historyRepo.Create(ctx, &entities.HistoryRecord{
			UserID:     user.ID,
			Symptoms:   "Vomiting",
			Disease:    disease,
			Confidence: 0.5,
			CreatedAt:  at,
		})
		require.NoError(t, err)
		lastID = id
	}

	records, err := historyRepo.ListByUser(ctx, user.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Ties on created_at fall back to insertion order, newest insert first.
	assert.Equal(t, lastID, records[0].ID)
	assert.Equal(t, "Fungal infection", records[0].Disease)
}
