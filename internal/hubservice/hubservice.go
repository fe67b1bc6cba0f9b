// FilePath: internal/hubservice/hubservice.go
package hubservice

import (
	"github.com/smarthive/hub/internal/alerting"
	"github.com/smarthive/hub/internal/cache"
	"github.com/smarthive/hub/internal/config"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

// HubService contains all repositories and service-wide dependencies.
// The alert broker and the event emitter are process-scoped: created once
// at startup, torn down at shutdown, never persisted.
type HubService struct {
	Users     repository.UserRepository
	Apiaries  repository.ApiaryRepository
	Hives     repository.HiveRepository
	Records   repository.RecordRepository
	Alerts    repository.AlertRepository
	AlertBus  *alerting.Broker
	Events    *nuts.EventEmitter
	evaluator *alerting.Evaluator
	auth      config.AuthConfig
	summaries *cache.SummaryCache
}

// New creates a new HubService instance. summaries may be nil, in which
// case dashboard counts are always computed from the database.
func New(
	users repository.UserRepository,
	apiaries repository.ApiaryRepository,
	hives repository.HiveRepository,
	records repository.RecordRepository,
	alerts repository.AlertRepository,
	bus *alerting.Broker,
	authCfg config.AuthConfig,
	summaries *cache.SummaryCache,
) *HubService {
	return &HubService{
		Users:     users,
		Apiaries:  apiaries,
		Hives:     hives,
		Records:   records,
		Alerts:    alerts,
		AlertBus:  bus,
		Events:    nuts.NewEventEmitter(),
		evaluator: alerting.NewEvaluator(),
		auth:      authCfg,
		summaries: summaries,
	}
}

// Validate checks if all required dependencies are initialized
func (s *HubService) Validate() error {
	if s.Users == nil {
		return ErrMissingDependency("users")
	}
	if s.Apiaries == nil {
		return ErrMissingDependency("apiaries")
	}
	if s.Hives == nil {
		return ErrMissingDependency("hives")
	}
	if s.Records == nil {
		return ErrMissingDependency("records")
	}
	if s.Alerts == nil {
		return ErrMissingDependency("alerts")
	}
	if s.AlertBus == nil {
		return ErrMissingDependency("alertBus")
	}
	return nil
}

func ErrMissingDependency(name string) error {
	return errors.NewInternalError("missing dependency: "+name, nil)
}

// OnEvent registers a callback for hub events (alert.created, hive.deleted,
// records.expired, ...). The first emitted argument is the subject id or
// count, stringified.
func (s *HubService) OnEvent(event string, handler func(subject string)) {
	s.Events.On(event, "hub_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if subject, ok := args[0].(string); ok {
				handler(subject)
			}
		}
	})
}
