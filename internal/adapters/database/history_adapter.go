package database

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/medicare-app/backend/internal/domain/entities"
	"github.com/medicare-app/backend/internal/domain/repositories"
	"github.com/medicare-app/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/medicare-app/backend/pkg/errors"
)

// HistoryAdapter implements consultation-history persistence in Postgres.
// Rows are append-only; the bigserial id doubles as the insertion-order
// tiebreak when two records share a timestamp.
type HistoryAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewHistoryAdapter creates a new history adapter.
func NewHistoryAdapter(client *postgres.Client) repositories.HistoryRepository {
	return &HistoryAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create appends exactly one record and returns its assigned id. The insert
// is a single statement, so concurrent appends from different users cannot
// interleave inside one record.
func (a *HistoryAdapter) Create(ctx context.Context, record *entities.HistoryRecord) (int64, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query, args, err := a.db.Insert("history").Rows(goqu.Record{
		"user_id":    record.UserID,
		"symptoms":   record.Symptoms,
		"disease":    record.Disease,
		"confidence": record.Confidence,
		"created_at": record.CreatedAt,
	}).Returning("id").ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build history insert query", err)
	}

	var id int64
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, apperrors.NewInternalError("failed to create history record", err)
	}

	record.ID = id
	return id, nil
}

// ListByUser returns the user's records newest first; identical timestamps
// fall back to id descending (most-recently-inserted first).
func (a *HistoryAdapter) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.HistoryRecord, error) {
	ds := a.db.Select(
		"id", "user_id", "symptoms", "disease", "confidence", "created_at",
	).From("history").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())

	if limit > 0 {
		ds = ds.Limit(uint(limit))
	}
	if offset > 0 {
		ds = ds.Offset(uint(offset))
	}

	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build history list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list history records", err)
	}
	defer rows.Close()

	var records []*entities.HistoryRecord
	for rows.Next() {
		record := &entities.HistoryRecord{}
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Symptoms,
			&record.Disease,
			&record.Confidence,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan history record", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating history records", err)
	}

	return records, nil
}
