// FilePath: internal/monitoring/monitoring.go
package monitoring

import (
	"sync"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

// Service keeps in-process counters for hub events (alerts raised, rows
// expired, deletions). Counters reset on restart.
type Service struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewService creates a new monitoring service
func NewService() *Service {
	return &Service{
		counters: make(map[string]int64),
	}
}

// RecordEvent counts a monitored event and logs it with its labels.
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	ts := time.Now()

	s.mu.Lock()
	s.counters[eventName]++
	count := s.counters[eventName]
	s.mu.Unlock()

	nuts.L.Infof("[Monitoring] Event %s (#%d) at %v labels: %v", eventName, count, ts, labels)
}

// EventCounts returns a snapshot of all event counters.
func (s *Service) EventCounts() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[string]int64, len(s.counters))
	for name, count := range s.counters {
		snapshot[name] = count
	}
	return snapshot
}
