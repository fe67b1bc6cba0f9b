// FilePath: internal/repository/postgres/postgres.apiary.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/smarthive/hub/internal/database"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/models"
)

type ApiaryRepo struct {
	PostgresBaseRepo
}

func NewApiaryRepository(db database.DB) *ApiaryRepo {
	repo := &PostgresBaseRepo{db: db}
	return &ApiaryRepo{PostgresBaseRepo: *repo}
}

func (r *ApiaryRepo) Create(ctx context.Context, apiary *models.Apiary) error {
	query := `
		INSERT INTO apiaries (
			id, name, location, description, owner_id, created_at, updated_at
		) VALUES (
			:id, :name, :location, :description, :owner_id, :created_at, :updated_at
		)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, apiary)
	if err != nil {
		return errors.NewDatabaseError("failed to create apiary", err)
	}
	return nil
}

func (r *ApiaryRepo) Get(ctx context.Context, id, ownerID string) (*models.Apiary, error) {
	apiary := &models.Apiary{}
	query := `SELECT * FROM apiaries WHERE id = $1 AND owner_id = $2`

	err := r.db.GetDB().GetContext(ctx, apiary, query, id, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("apiary not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get apiary", err)
	}
	return apiary, nil
}

func (r *ApiaryRepo) Update(ctx context.Context, apiary *models.Apiary) error {
	query := `
		UPDATE apiaries SET
			name = :name,
			location = :location,
			description = :description,
			updated_at = :updated_at
		WHERE id = :id AND owner_id = :owner_id`

	result, err := r.db.GetDB().NamedExecContext(ctx, query, apiary)
	if err != nil {
		return errors.NewDatabaseError("failed to update apiary", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("apiary not found", nil)
	}

	return nil
}

func (r *ApiaryRepo) Delete(ctx context.Context, id, ownerID string) error {
	query := `DELETE FROM apiaries WHERE id = $1 AND owner_id = $2`

	result, err := r.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("apiary not found", nil)
	}

	return nil
}

func (r *ApiaryRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Apiary, error) {
	apiaries := []*models.Apiary{}
	query := `SELECT * FROM apiaries WHERE owner_id = $1 ORDER BY created_at DESC`

	err := r.db.GetDB().SelectContext(ctx, &apiaries, query, ownerID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list apiaries", err)
	}

	return apiaries, nil
}

// Exists is not owner-scoped: hive creation only needs to know the apiary
// is real, whoever owns it.
func (r *ApiaryRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM apiaries WHERE id = $1)`

	err := r.db.GetDB().GetContext(ctx, &exists, query, id)
	if err != nil {
		return false, errors.NewDatabaseError("failed to check apiary existence", err)
	}
	return exists, nil
}

func (r *ApiaryRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM apiaries WHERE owner_id = $1`

	err := r.db.GetDB().GetContext(ctx, &count, query, ownerID)
	if err != nil {
		return 0, errors.NewDatabaseError("failed to count apiaries", err)
	}
	return count, nil
}
