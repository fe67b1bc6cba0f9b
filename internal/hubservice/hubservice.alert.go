// FilePath: internal/hubservice/hubservice.alert.go
package hubservice

import (
	"context"

	"github.com/smarthive/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// ListAlerts returns alerts, newest first, capped at 200. With Open=true
// only unacknowledged alerts are returned.
func (s *HubService) ListAlerts(ctx context.Context, filters models.AlertFilters) ([]*models.Alert, error) {
	return s.Alerts.List(ctx, filters)
}

// AcknowledgeAlert marks an alert as acknowledged and returns it.
// Acknowledging an already-acknowledged alert is a successful no-op.
func (s *HubService) AcknowledgeAlert(ctx context.Context, id string) (*models.Alert, error) {
	alert, err := s.Alerts.Acknowledge(ctx, id)
	if err != nil {
		return nil, err
	}

	nuts.L.Infof("[AlertService] Alert %s acknowledged", id)
	return alert, nil
}
