// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/smarthive/hub/internal/database"
	"github.com/smarthive/hub/internal/models"
)

var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate indicates that a resource already exists
	ErrDuplicate = errors.New("resource already exists")
	// ErrInvalidInput indicates that the input data is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	database.Repository
	Create(ctx context.Context, user *models.User) error
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ApiaryRepository defines the interface for apiary data operations.
// All lookups are owner-scoped: an apiary belonging to another user
// behaves exactly like a missing one.
type ApiaryRepository interface {
	database.Repository
	Create(ctx context.Context, apiary *models.Apiary) error
	Get(ctx context.Context, id, ownerID string) (*models.Apiary, error)
	Update(ctx context.Context, apiary *models.Apiary) error
	Delete(ctx context.Context, id, ownerID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Apiary, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// HiveRepository defines the interface for hive data operations
type HiveRepository interface {
	database.Repository
	Create(ctx context.Context, hive *models.Hive) error
	Get(ctx context.Context, id string) (*models.Hive, error)
	Update(ctx context.Context, hive *models.Hive) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters models.HiveFilters) ([]*models.Hive, error)
	Count(ctx context.Context) (int, error)
}

// RecordRepository defines the interface for observation records.
// Records are insert-only; there is no update or single delete.
type RecordRepository interface {
	database.Repository
	Create(ctx context.Context, record *models.Record) error
	List(ctx context.Context, filters models.RecordFilters) ([]*models.Record, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// AlertRepository defines the interface for derived alerts
type AlertRepository interface {
	database.Repository
	Create(ctx context.Context, alert *models.Alert) error
	Get(ctx context.Context, id string) (*models.Alert, error)
	List(ctx context.Context, filters models.AlertFilters) ([]*models.Alert, error)
	Acknowledge(ctx context.Context, id string) (*models.Alert, error)
	CountOpen(ctx context.Context) (int, error)
	DeleteAcknowledgedOlderThan(ctx context.Context, before time.Time) (int64, error)
}
