package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/medicare-app/backend/internal/adapters/database"
	"github.com/medicare-app/backend/internal/domain/entities"
	"github.com/medicare-app/backend/internal/infrastructure/clients/postgres"
	"github.com/medicare-app/backend/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS history (
	id BIGSERIAL PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id),
	symptoms TEXT NOT NULL,
	disease TEXT NOT NULL,
	confidence DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_user_created
	ON history (user_id, created_at DESC, id DESC);

CREATE TABLE IF NOT EXISTS feedback (
	id UUID PRIMARY KEY,
	username TEXT,
	rating INT NOT NULL,
	comment TEXT,
	created_at TIMESTAMPTZ NOT NULL
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				history,
				feedback,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	if _, err := pgClient.DB().ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}
	log.Println("Schema applied")

	userRepo := database.NewUserAdapter(pgClient)
	historyRepo := database.NewHistoryAdapter(pgClient)
	feedbackRepo := database.NewFeedbackAdapter(pgClient)

	// Demo account for local development.
	demoPassword := os.Getenv("SEED_DEMO_PASSWORD")
	if demoPassword == "" {
		demoPassword = "demo-password"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	now := time.Now().UTC()
	demoUser := &entities.User{
		ID:           uuid.New().String(),
		Username:     "demo",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, demoUser); err != nil {
		log.Printf("Demo user not created (may already exist): %v", err)
	} else {
		log.Printf("Demo user created: %s", demoUser.Username)

		consultations := []*entities.HistoryRecord{
			{UserID: demoUser.ID, Symptoms: "Itching, Skin Rash", Disease: "Fungal infection", Confidence: 0.91, CreatedAt: now.Add(-48 * time.Hour)},
			{UserID: demoUser.ID, Symptoms: "Headache, Vomiting", Disease: "Migraine", Confidence: 0.77, CreatedAt: now.Add(-24 * time.Hour)},
		}
		for _, record := range consultations {
			if _, err := historyRepo.Create(ctx, record); err != nil {
				log.Printf("Failed to seed history record: %v", err)
			}
		}

		feedback := &entities.Feedback{
			ID:        uuid.New().String(),
			Username:  demoUser.Username,
			Rating:    5,
			Comment:   "Found the checker easy to use",
			CreatedAt: now,
		}
		if err := feedbackRepo.Create(ctx, feedback); err != nil {
			log.Printf("Failed to seed feedback: %v", err)
		}
	}

	log.Println("Seeding complete")
}
