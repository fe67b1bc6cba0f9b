// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	"github.com/smarthive/hub/api"
	"github.com/smarthive/hub/internal/alerting"
	"github.com/smarthive/hub/internal/cache"
	"github.com/smarthive/hub/internal/config"
	"github.com/smarthive/hub/internal/database"
	"github.com/smarthive/hub/internal/hubservice"
	"github.com/smarthive/hub/internal/monitoring"
	"github.com/smarthive/hub/internal/repository/postgres"
	"github.com/smarthive/hub/internal/retention"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	db         database.DB
	hubservice *hubservice.HubService
	alertBus   *alerting.Broker
	retention  *retention.Service
	monitoring *monitoring.Service
	summaries  *cache.SummaryCache
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	if err := s.initialize(); err != nil {
		return err
	}

	// Set up hub event handlers
	s.setupEventHandlers()

	// Start background retention sweeps
	s.retention.Start()

	// Router plus the ambient HTTP middleware: CORS for the browser
	// dashboards and access logging.
	router := api.NewRouter(s.hubservice, s.config.Auth, s.config.Stream)
	s.srv.Handler = handlers.CombinedLoggingHandler(os.Stdout, s.corsHandler(router))

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// initialize wires the database, cache, repositories and hub service.
func (s *Server) initialize() error {
	db, err := database.NewPostgresDB(s.config.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db

	// The summary cache is optional: without a Redis host the dashboard
	// counts are always computed from the database.
	if s.config.Redis.Host != "" {
		summaries, err := cache.NewSummaryCache(s.config.Redis)
		if err != nil {
			nuts.L.Warnf("[Server] Redis unavailable, dashboard caching disabled: %v", err)
		} else {
			s.summaries = summaries
		}
	}

	users := postgres.NewUserRepository(db)
	apiaries := postgres.NewApiaryRepository(db)
	hives := postgres.NewHiveRepository(db)
	records := postgres.NewRecordRepository(db)
	alerts := postgres.NewAlertRepository(db)

	s.alertBus = alerting.NewBroker(s.config.Stream.ClientBuffer)
	s.monitoring = monitoring.NewService()

	s.hubservice = hubservice.New(users, apiaries, hives, records, alerts, s.alertBus, s.config.Auth, s.summaries)
	if err := s.hubservice.Validate(); err != nil {
		return err
	}

	s.retention = retention.New(records, alerts, s.config.Retention, s.hubservice.Events)
	return nil
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	s.retention.Stop()
	s.alertBus.Close()
	if s.summaries != nil {
		s.summaries.Close()
	}
	if err := s.db.Close(); err != nil {
		nuts.L.Warnf("[Server] Error closing database: %v", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) corsHandler(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(s.config.Server.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", "Accept"}),
		handlers.AllowCredentials(),
	)(next)
}

func (s *Server) setupEventHandlers() {
	// Alerts raised by the rule evaluator
	s.hubservice.OnEvent("alert.created", func(id string) {
		s.monitoring.RecordEvent("alert_created", map[string]string{
			"alert_id": id,
		})
	})

	// Retention sweeps
	s.hubservice.OnEvent("records.expired", func(count string) {
		s.monitoring.RecordEvent("records_expired", map[string]string{
			"count": count,
		})
	})
	s.hubservice.OnEvent("alerts.expired", func(count string) {
		s.monitoring.RecordEvent("alerts_expired", map[string]string{
			"count": count,
		})
	})

	// Deletions leave dangling child references on purpose; the events
	// keep them observable.
	s.hubservice.OnEvent("apiary.deleted", func(id string) {
		nuts.L.Infof("[Events] Apiary %s deleted, its hives keep dangling references", id)
		s.monitoring.RecordEvent("apiary_deletion", map[string]string{
			"apiary_id": id,
		})
	})
	s.hubservice.OnEvent("hive.deleted", func(id string) {
		nuts.L.Infof("[Events] Hive %s deleted, its records and alerts age out via retention", id)
		s.monitoring.RecordEvent("hive_deletion", map[string]string{
			"hive_id": id,
		})
	})
}
