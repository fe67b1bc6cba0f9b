// FilePath: internal/hubservice/hubservice.record.go
package hubservice

import (
	"context"
	"math/rand"
	"time"

	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// CreateRecord persists an observation record and runs the alert rules on
// it. The record is durable before any alert work starts; alert persistence
// or publish failures never fail the record creation.
func (s *HubService) CreateRecord(ctx context.Context, record *models.Record) error {
	if record.HiveID == "" || record.Kind == "" {
		return errors.NewValidationError("colmeia and tipo are required", nil)
	}
	if !models.ValidKind(record.Kind) {
		return errors.NewValidationError("unknown record kind", nil).WithDetails(record.Kind)
	}
	if record.Origin == "" {
		record.Origin = models.OriginCamera
	}
	if !models.ValidOrigin(record.Origin) {
		return errors.NewValidationError("unknown record origin", nil).WithDetails(record.Origin)
	}
	if record.Metadata == nil {
		record.Metadata = models.JSON{}
	}

	if record.ID == "" {
		record.ID = nuts.NID("rec", 12)
	}
	record.CreatedAt = time.Now()

	if err := s.Records.Create(ctx, record); err != nil {
		return err
	}

	s.maybeCreateAlert(ctx, record)
	return nil
}

// SimulateCameraRecord creates a randomized camera observation for a hive,
// as the hardware camera would.
func (s *HubService) SimulateCameraRecord(ctx context.Context, hiveID string) (*models.Record, error) {
	if hiveID == "" {
		return nil, errors.NewValidationError("colmeia is required", nil)
	}

	kinds := []models.RecordKind{models.KindEntry, models.KindExit, models.KindPredator}
	kind := kinds[rand.Intn(len(kinds))]

	value := float64(rand.Intn(10))
	if kind == models.KindPredator {
		value = 1
	}

	record := &models.Record{
		HiveID: hiveID,
		Kind:   kind,
		Value:  value,
		Origin: models.OriginCamera,
		Metadata: models.JSON{
			"simulado":  true,
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}

	if err := s.CreateRecord(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListRecords returns records, newest first, capped at 500.
func (s *HubService) ListRecords(ctx context.Context, filters models.RecordFilters) ([]*models.Record, error) {
	return s.Records.List(ctx, filters)
}

// maybeCreateAlert evaluates the rule table against a just-persisted record
// and, on a match, stores the alert and publishes it on the bus. At most
// one alert per record.
func (s *HubService) maybeCreateAlert(ctx context.Context, record *models.Record) {
	draft := s.evaluator.Evaluate(record)
	if draft == nil {
		return
	}

	draft.ID = nuts.NID("alr", 12)
	draft.CreatedAt = time.Now()

	if err := s.Alerts.Create(ctx, draft); err != nil {
		// The record request already succeeded; losing the derived alert
		// is logged, not surfaced.
		nuts.L.Errorf("[RecordService] Failed to store alert for record %s: %v", record.ID, err)
		return
	}

	s.AlertBus.Publish(draft)
	s.Events.Emit("alert.created", draft.ID)
	nuts.L.Infof("[RecordService] Alert %s (%s) raised for hive %s", draft.ID, draft.Level, draft.HiveID)
}
