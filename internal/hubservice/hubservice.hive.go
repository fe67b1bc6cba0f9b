// FilePath: internal/hubservice/hubservice.hive.go
package hubservice

import (
	"context"
	"time"

	"github.com/itsatony/struccy"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateHive creates a new hive after validating its apiary reference.
func (s *HubService) CreateHive(ctx context.Context, hive *models.Hive) error {
	missing := []string{}
	if hive.Identifier == "" {
		missing = append(missing, "identificador")
	}
	if hive.ApiaryID == "" {
		missing = append(missing, "apiario")
	}
	if len(missing) > 0 {
		return errors.NewValidationError("missing required fields", nil).WithDetails(missing)
	}

	if hive.State == "" {
		hive.State = models.HiveStateHealthy
	}
	if !models.ValidState(hive.State) {
		return errors.NewValidationError("unknown hive state", nil).WithDetails(hive.State)
	}
	if hive.Species == "" {
		hive.Species = models.DefaultHiveSpecies
	}

	exists, err := s.Apiaries.Exists(ctx, hive.ApiaryID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewValidationError("unknown apiary", nil).WithDetails(hive.ApiaryID)
	}

	if hive.ID == "" {
		hive.ID = nuts.NID("hv", 12)
	}

	now := time.Now()
	hive.CreatedAt = now
	hive.UpdatedAt = now

	nuts.L.Infof("[HiveService] Creating hive %s (%s) in apiary %s", hive.Identifier, hive.ID, hive.ApiaryID)
	return s.Hives.Create(ctx, hive)
}

// GetHive retrieves a single hive.
func (s *HubService) GetHive(ctx context.Context, id string) (*models.Hive, error) {
	return s.Hives.Get(ctx, id)
}

// ListHives retrieves hives, optionally filtered by apiary, newest first.
func (s *HubService) ListHives(ctx context.Context, filters models.HiveFilters) ([]*models.Hive, error) {
	return s.Hives.List(ctx, filters)
}

// UpdateHive updates an existing hive with role-based field filtering:
// reassigning a hive to another apiary is an admin-only write.
func (s *HubService) UpdateHive(ctx context.Context, hive *models.Hive) (*models.Hive, error) {
	existing, err := s.Hives.Get(ctx, hive.ID)
	if err != nil {
		return nil, err
	}

	roles := GetUserRoles(ctx)
	updatedFields, _, err := struccy.UpdateStructFields(existing, hive, roles, true, true)
	if err != nil {
		return nil, errors.NewAuthorizationError("unauthorized field update", err)
	}

	if !models.ValidState(existing.State) {
		return nil, errors.NewValidationError("unknown hive state", nil).WithDetails(existing.State)
	}

	existing.UpdatedAt = time.Now()

	nuts.L.Infof("[HiveService] Updating hive %s, fields changed: %v", hive.ID, updatedFields)
	if err := s.Hives.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteHive removes a hive. Its records and alerts are left behind with
// dangling references; the retention sweeper ages them out eventually.
func (s *HubService) DeleteHive(ctx context.Context, id string) error {
	if err := s.Hives.Delete(ctx, id); err != nil {
		return err
	}

	s.Events.Emit("hive.deleted", id)
	nuts.L.Infof("[HiveService] Deleted hive %s", id)
	return nil
}
