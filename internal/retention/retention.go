// FilePath: internal/retention/retention.go
package retention

import (
	"context"
	"strconv"
	"time"

	"github.com/smarthive/hub/internal/config"
	"github.com/smarthive/hub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// sweepTimeout is the context deadline for one retention sweep.
const sweepTimeout = 30 * time.Second

// Service ages out old data on a fixed schedule: records past their
// maximum age and acknowledged alerts past theirs. Open alerts are never
// expired.
type Service struct {
	records repository.RecordRepository
	alerts  repository.AlertRepository
	cfg     config.RetentionConfig
	events  *nuts.EventEmitter
	stop    chan struct{}
	done    chan struct{}
}

// New creates a retention service. events receives "records.expired" and
// "alerts.expired" with the deleted row count.
func New(records repository.RecordRepository, alerts repository.AlertRepository, cfg config.RetentionConfig, events *nuts.EventEmitter) *Service {
	return &Service{
		records: records,
		alerts:  alerts,
		cfg:     cfg,
		events:  events,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the periodic sweeper. No-op when retention is disabled.
func (s *Service) Start() {
	if !s.cfg.Enabled {
		nuts.L.Infof("[Retention] Disabled by configuration")
		close(s.done)
		return
	}

	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Hour
	}

	nuts.L.Infof("[Retention] Sweeping every %s (records > %s, acknowledged alerts > %s)",
		interval, s.cfg.RecordMaxAge, s.cfg.AlertMaxAge)

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweepOnce()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop halts the sweeper and waits for any in-flight sweep to finish.
func (s *Service) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	<-s.done
}

func (s *Service) sweepOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	if _, _, err := s.Sweep(ctx); err != nil {
		nuts.L.Errorf("[Retention] Sweep failed: %v", err)
	}
}

// Sweep deletes expired rows once and reports how many were removed.
func (s *Service) Sweep(ctx context.Context) (expiredRecords, expiredAlerts int64, err error) {
	now := time.Now()

	if s.cfg.RecordMaxAge > 0 {
		expiredRecords, err = s.records.DeleteOlderThan(ctx, now.Add(-s.cfg.RecordMaxAge))
		if err != nil {
			return expiredRecords, 0, err
		}
		if expiredRecords > 0 {
			s.events.Emit("records.expired", strconv.FormatInt(expiredRecords, 10))
			nuts.L.Infof("[Retention] Expired %d records", expiredRecords)
		}
	}

	if s.cfg.AlertMaxAge > 0 {
		expiredAlerts, err = s.alerts.DeleteAcknowledgedOlderThan(ctx, now.Add(-s.cfg.AlertMaxAge))
		if err != nil {
			return expiredRecords, expiredAlerts, err
		}
		if expiredAlerts > 0 {
			s.events.Emit("alerts.expired", strconv.FormatInt(expiredAlerts, 10))
			nuts.L.Infof("[Retention] Expired %d acknowledged alerts", expiredAlerts)
		}
	}

	return expiredRecords, expiredAlerts, nil
}
