// FilePath: api/api.router.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/smarthive/hub/api/middleware"
	"github.com/smarthive/hub/api/resources"
	"github.com/smarthive/hub/internal/config"
	"github.com/smarthive/hub/internal/hubservice"
)

type Router struct {
	router    *mux.Router
	auth      *middleware.JWTMiddleware
	resources *resources.Resources
}

func NewRouter(svc *hubservice.HubService, authCfg config.AuthConfig, streamCfg config.StreamConfig) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		auth:      middleware.NewJWTMiddleware(authCfg),
		resources: resources.NewResources(svc, streamCfg),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// Public routes
	r.router.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)
	r.router.HandleFunc("/auth/register", r.resources.Auth.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/auth/login", r.resources.Auth.Login).Methods(http.MethodPost)

	// Protected routes
	protected := r.router.PathPrefix("/api").Subrouter()
	protected.Use(r.auth.Authenticate)

	// Apiaries (owner-scoped)
	apiaries := protected.PathPrefix("/apiarios").Subrouter()
	apiaries.HandleFunc("", r.resources.Apiaries.ListApiaries).Methods(http.MethodGet)
	apiaries.HandleFunc("", r.resources.Apiaries.CreateApiary).Methods(http.MethodPost)
	apiaries.HandleFunc("/{id}", r.resources.Apiaries.UpdateApiary).Methods(http.MethodPut)
	apiaries.HandleFunc("/{id}", r.resources.Apiaries.DeleteApiary).Methods(http.MethodDelete)

	// Hives
	hives := protected.PathPrefix("/colmeias").Subrouter()
	hives.HandleFunc("", r.resources.Hives.ListHives).Methods(http.MethodGet)
	hives.HandleFunc("", r.resources.Hives.CreateHive).Methods(http.MethodPost)
	hives.HandleFunc("/{id}", r.resources.Hives.GetHive).Methods(http.MethodGet)
	hives.HandleFunc("/{id}", r.resources.Hives.UpdateHive).Methods(http.MethodPut)
	hives.HandleFunc("/{id}", r.resources.Hives.DeleteHive).Methods(http.MethodDelete)

	// Records (insert-only)
	records := protected.PathPrefix("/registros").Subrouter()
	records.HandleFunc("", r.resources.Records.ListRecords).Methods(http.MethodGet)
	records.HandleFunc("", r.resources.Records.CreateRecord).Methods(http.MethodPost)
	records.HandleFunc("/simulate", r.resources.Records.SimulateRecord).Methods(http.MethodPost)

	// Alerts: the stream route must be registered before the {id} routes
	// so "stream" is never captured as an alert id.
	alerts := protected.PathPrefix("/alertas").Subrouter()
	alerts.HandleFunc("/stream", r.resources.Alerts.StreamAlerts).Methods(http.MethodGet)
	alerts.HandleFunc("", r.resources.Alerts.ListAlerts).Methods(http.MethodGet)
	alerts.HandleFunc("/{id}/ack", r.resources.Alerts.AcknowledgeAlert).Methods(http.MethodPost)

	// Dashboard
	protected.HandleFunc("/dashboard/summary", r.resources.Dashboard.GetSummary).Methods(http.MethodGet)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
