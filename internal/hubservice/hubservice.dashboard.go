// FilePath: internal/hubservice/hubservice.dashboard.go
package hubservice

import (
	"context"
	"time"

	"github.com/smarthive/hub/internal/errors"
)

// DashboardSummary holds the aggregated counts the dashboard polls every
// 30 seconds.
type DashboardSummary struct {
	Apiaries      int       `json:"apiarios"`
	Hives         int       `json:"colmeias"`
	OpenAlerts    int       `json:"alertasAbertos"`
	RecordsLast24 int       `json:"registros24h"`
	GeneratedAt   time.Time `json:"geradoEm"`
}

// GetDashboardSummary computes the per-user dashboard counts, serving from
// the Redis cache when a fresh snapshot exists. Cache failures fall back to
// direct queries.
func (s *HubService) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	user := UserFromContext(ctx)
	if user == nil {
		return nil, errors.NewAuthError("no authenticated user", nil)
	}

	cacheKey := "dashboard:summary:" + user.ID
	if s.summaries != nil {
		summary := &DashboardSummary{}
		if s.summaries.Get(ctx, cacheKey, summary) {
			return summary, nil
		}
	}

	apiaries, err := s.Apiaries.CountByOwner(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	hives, err := s.Hives.Count(ctx)
	if err != nil {
		return nil, err
	}
	openAlerts, err := s.Alerts.CountOpen(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.Records.CountSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Apiaries:      apiaries,
		Hives:         hives,
		OpenAlerts:    openAlerts,
		RecordsLast24: records,
		GeneratedAt:   time.Now(),
	}

	if s.summaries != nil {
		s.summaries.Set(ctx, cacheKey, summary)
	}
	return summary, nil
}
