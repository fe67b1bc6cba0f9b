// FilePath: internal/hubservice/hubservice.apiary.go
package hubservice

import (
	"context"
	"time"

	"github.com/itsatony/struccy"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateApiary creates a new apiary owned by the calling user.
func (s *HubService) CreateApiary(ctx context.Context, apiary *models.Apiary) error {
	user := UserFromContext(ctx)
	if user == nil {
		return errors.NewAuthError("no authenticated user", nil)
	}
	if apiary.Name == "" {
		return errors.NewValidationError("nome is required", nil)
	}

	if apiary.ID == "" {
		apiary.ID = nuts.NID("apy", 12)
	}
	apiary.OwnerID = user.ID

	now := time.Now()
	apiary.CreatedAt = now
	apiary.UpdatedAt = now

	nuts.L.Infof("[ApiaryService] Creating apiary %s (%s) for user %s", apiary.Name, apiary.ID, user.ID)
	return s.Apiaries.Create(ctx, apiary)
}

// ListApiaries returns the calling user's apiaries, newest first.
func (s *HubService) ListApiaries(ctx context.Context) ([]*models.Apiary, error) {
	user := UserFromContext(ctx)
	if user == nil {
		return nil, errors.NewAuthError("no authenticated user", nil)
	}
	return s.Apiaries.ListByOwner(ctx, user.ID)
}

// UpdateApiary applies the caller's changes to an owned apiary. Field-level
// write access is enforced by role, so owner_id can never be reassigned by
// a regular user.
func (s *HubService) UpdateApiary(ctx context.Context, apiary *models.Apiary) (*models.Apiary, error) {
	user := UserFromContext(ctx)
	if user == nil {
		return nil, errors.NewAuthError("no authenticated user", nil)
	}

	existing, err := s.Apiaries.Get(ctx, apiary.ID, user.ID)
	if err != nil {
		return nil, err
	}

	roles := GetUserRoles(ctx)
	updatedFields, _, err := struccy.UpdateStructFields(existing, apiary, roles, true, true)
	if err != nil {
		return nil, errors.NewAuthorizationError("unauthorized field update", err)
	}

	existing.UpdatedAt = time.Now()

	nuts.L.Infof("[ApiaryService] Updating apiary %s, fields changed: %v", apiary.ID, updatedFields)
	if err := s.Apiaries.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteApiary removes an owned apiary. Hives, records and alerts that
// reference it are left in place with dangling references; the retention
// sweeper ages the leaf data out.
func (s *HubService) DeleteApiary(ctx context.Context, id string) error {
	user := UserFromContext(ctx)
	if user == nil {
		return errors.NewAuthError("no authenticated user", nil)
	}

	if err := s.Apiaries.Delete(ctx, id, user.ID); err != nil {
		return err
	}

	s.Events.Emit("apiary.deleted", id)
	nuts.L.Infof("[ApiaryService] Deleted apiary %s", id)
	return nil
}
