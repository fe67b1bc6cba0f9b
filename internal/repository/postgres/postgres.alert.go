// FilePath: internal/repository/postgres/postgres.alert.go
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/smarthive/hub/internal/database"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/models"
)

type AlertRepo struct {
	PostgresBaseRepo
}

func NewAlertRepository(db database.DB) *AlertRepo {
	repo := &PostgresBaseRepo{db: db}
	return &AlertRepo{PostgresBaseRepo: *repo}
}

func (r *AlertRepo) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (
			id, hive_id, level, message, origin, acknowledged, created_at
		) VALUES (
			:id, :hive_id, :level, :message, :origin, :acknowledged, :created_at
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, alert)
	if err != nil {
		return errors.NewDatabaseError("failed to create alert", err)
	}
	return nil
}

func (r *AlertRepo) Get(ctx context.Context, id string) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `SELECT * FROM alerts WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, alert, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("alert not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get alert", err)
	}
	return alert, nil
}

func (r *AlertRepo) List(ctx context.Context, filters models.AlertFilters) ([]*models.Alert, error) {
	alerts := []*models.Alert{}

	limit := filters.Limit
	if limit <= 0 || limit > models.MaxAlertResults {
		limit = models.MaxAlertResults
	}

	query := `SELECT * FROM alerts WHERE ($1 = '' OR hive_id = $1) AND ($2 = false OR acknowledged = false)
		ORDER BY created_at DESC LIMIT $3`

	err := r.db.GetDB().SelectContext(ctx, &alerts, query, filters.HiveID, filters.Open, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list alerts", err)
	}
	return alerts, nil
}

// Acknowledge flips the acknowledged flag and returns the updated alert.
// Re-acknowledging is a no-op that still succeeds.
func (r *AlertRepo) Acknowledge(ctx context.Context, id string) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `UPDATE alerts SET acknowledged = true WHERE id = $1 RETURNING *`

	err := r.db.GetDB().GetContext(ctx, alert, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("alert not found", err)
		}
		return nil, errors.NewDatabaseError("failed to acknowledge alert", err)
	}
	return alert, nil
}

func (r *AlertRepo) CountOpen(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM alerts WHERE acknowledged = false`

	err := r.db.GetDB().GetContext(ctx, &count, query)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count open alerts", err)
	}
	return count, nil
}

func (r *AlertRepo) DeleteAcknowledgedOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM alerts WHERE acknowledged = true AND created_at < $1`

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
