// FilePath: internal/repository/postgres/postgres.hive.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/smarthive/hub/internal/database"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/models"
)

type HiveRepo struct {
	PostgresBaseRepo
}

func NewHiveRepository(db database.DB) *HiveRepo {
	repo := &PostgresBaseRepo{db: db}
	return &HiveRepo{PostgresBaseRepo: *repo}
}

func (r *HiveRepo) Create(ctx context.Context, hive *models.Hive) error {
	query := `
		INSERT INTO hives (
			id, identifier, species, apiary_id, state, created_at, updated_at
		) VALUES (
			:id, :identifier, :species, :apiary_id, :state, :created_at, :updated_at
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, hive)
	if err != nil {
		return errors.NewDatabaseError("failed to create hive", err)
	}
	return nil
}

func (r *HiveRepo) Get(ctx context.Context, id string) (*models.Hive, error) {
	hive := &models.Hive{}
	query := `SELECT * FROM hives WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, hive, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("hive not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get hive", err)
	}
	return hive, nil
}

func (r *HiveRepo) Update(ctx context.Context, hive *models.Hive) error {
	query := `
		UPDATE hives SET
			identifier = :identifier,
			species = :species,
			apiary_id = :apiary_id,
			state = :state,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, hive)
	if err != nil {
		return errors.NewDatabaseError("failed to update hive", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("hive not found", nil)
	}

	return nil
}

func (r *HiveRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM hives WHERE id = $1`

	result, err := r.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("hive not found", nil)
	}

	return nil
}

func (r *HiveRepo) List(ctx context.Context, filters models.HiveFilters) ([]*models.Hive, error) {
	hives := []*models.Hive{}

	if filters.ApiaryID != "" {
		query := `SELECT * FROM hives WHERE apiary_id = $1 ORDER BY created_at DESC`
		if err := r.db.GetDB().SelectContext(ctx, &hives, query, filters.ApiaryID); err != nil {
			return nil, errors.NewDatabaseError("failed to list hives", err)
		}
		return hives, nil
	}

	query := `SELECT * FROM hives ORDER BY created_at DESC`
	if err := r.db.GetDB().SelectContext(ctx, &hives, query); err != nil {
		return nil, errors.NewDatabaseError("failed to list hives", err)
	}
	return hives, nil
}

func (r *HiveRepo) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM hives`

	err := r.db.GetDB().GetContext(ctx, &count, query)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count hives", err)
	}
	return count, nil
}
