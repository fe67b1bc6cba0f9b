// FilePath: internal/repository/postgres/postgres.record.go
package postgres

import (
	"context"
	"time"

	"github.com/smarthive/hub/internal/database"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/models"
)

type RecordRepo struct {
	PostgresBaseRepo
}

func NewRecordRepository(db database.DB) *RecordRepo {
	repo := &PostgresBaseRepo{db: db}
	return &RecordRepo{PostgresBaseRepo: *repo}
}

func (r *RecordRepo) Create(ctx context.Context, record *models.Record) error {
	query := `
		INSERT INTO records (
			id, hive_id, kind, value, origin, metadata, created_at
		) VALUES (
			:id, :hive_id, :kind, :value, :origin, :metadata, :created_at
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, record)
	if err != nil {
		return errors.NewDatabaseError("failed to create record", err)
	}
	return nil
}

func (r *RecordRepo) List(ctx context.Context, filters models.RecordFilters) ([]*models.Record, error) {
	records := []*models.Record{}

	limit := filters.Limit
	if limit <= 0 || limit > models.MaxRecordResults {
		limit = models.MaxRecordResults
	}

	query := `SELECT * FROM records WHERE ($1 = '' OR hive_id = $1) AND ($2 = '' OR kind = $2)
		ORDER BY created_at DESC LIMIT $3`

	err := r.db.GetDB().SelectContext(ctx, &records, query, filters.HiveID, filters.Kind, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list records", err)
	}
	return records, nil
}

func (r *RecordRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM records WHERE created_at >= $1`

	err := r.db.GetDB().GetContext(ctx, &count, query, since)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count records", err)
	}
	return count, nil
}

func (r *RecordRepo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM records WHERE created_at < $1`

	result, err := r.ExecContext(ctx, query, before)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewDatabaseError("failed to get rows affected", err)
	}
	return rows, nil
}
