// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/schema"
	"github.com/smarthive/hub/internal/config"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/hubservice"
	nuts "github.com/vaudience/go-nuts"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Auth      *AuthHandlers
	Apiaries  *ApiaryHandlers
	Hives     *HiveHandlers
	Records   *RecordHandlers
	Alerts    *AlertHandlers
	Dashboard *DashboardHandlers
}

// NewResources creates a new Resources instance
func NewResources(svc *hubservice.HubService, streamCfg config.StreamConfig) *Resources {
	return &Resources{
		Auth:      &AuthHandlers{hubservice: svc},
		Apiaries:  &ApiaryHandlers{hubservice: svc},
		Hives:     &HiveHandlers{hubservice: svc},
		Records:   &RecordHandlers{hubservice: svc},
		Alerts:    &AlertHandlers{hubservice: svc, pingInterval: streamCfg.PingInterval},
		Dashboard: &DashboardHandlers{hubservice: svc},
	}
}

// HealthCheck reports liveness.
func (r *Resources) HealthCheck(w http.ResponseWriter, req *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok": true,
		"ts": time.Now().UnixMilli(),
	})
}

// Helper functions

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func decodeQuery(dst interface{}, query url.Values) error {
	return queryDecoder.Decode(dst, query)
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// respondWithServiceError maps a service-layer failure onto the HTTP
// taxonomy, preserving the original status for typed errors.
func respondWithServiceError(w http.ResponseWriter, err error, requestID string) {
	respondWithError(w, errors.AsAPIError(err).WithRequestID(requestID))
}
