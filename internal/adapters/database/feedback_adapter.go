package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/medicare-app/backend/internal/domain/entities"
	"github.com/medicare-app/backend/internal/domain/repositories"
	"github.com/medicare-app/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medicare-app/backend/pkg/errors"
)

// FeedbackAdapter implements feedback persistence in Postgres.
type FeedbackAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewFeedbackAdapter creates a new feedback adapter.
func NewFeedbackAdapter(client *postgres.Client) repositories.FeedbackRepository {
	return &FeedbackAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create inserts a feedback record.
func (a *FeedbackAdapter) Create(ctx context.Context, feedback *entities.Feedback) error {
	if feedback == nil {
		return apperrors.NewInternalError("feedback is nil", fmt.Errorf("feedback is nil"))
	}

	record := goqu.Record{
		"id":         feedback.ID,
		"username":   sql.NullString{String: feedback.Username, Valid: feedback.Username != ""},
		"rating":     feedback.Rating,
		"comment":    sql.NullString{String: feedback.Comment, Valid: feedback.Comment != ""},
		"created_at": feedback.CreatedAt,
	}

	query, args, err := a.db.Insert("feedback").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build feedback insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create feedback", err)
	}

	return nil
}

// List returns feedback entries newest first.
func (a *FeedbackAdapter) List(ctx context.Context, limit, offset int) ([]*entities.Feedback, error) {
	ds := a.db.Select("id", "username", "rating", "comment", "created_at").
		From("feedback").
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())

	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}
	if offset > 0 {
		ds = ds.Offset(uint(offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build feedback list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list feedback", err)
	}
	defer rows.Close()

	var entries []*entities.Feedback
	for rows.Next() {
		entry := &entities.Feedback{}
		var username, comment sql.NullString
		if err := rows.Scan(&entry.ID, &username, &entry.Rating, &comment, &entry.CreatedAt); err != nil {
			return nil, apperrors.NewInternalError("failed to scan feedback", err)
		}
		entry.Username = username.String
		entry.Comment = comment.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating feedback", err)
	}

	return entries, nil
}
