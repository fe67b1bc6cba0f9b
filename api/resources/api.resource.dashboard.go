// FilePath: api/resources/api.resource.dashboard.go
package resources

import (
	"net/http"

	"github.com/smarthive/hub/internal/hubservice"
	nuts "github.com/vaudience/go-nuts"
)

// DashboardHandlers serves the aggregated counts the dashboard polls.
type DashboardHandlers struct {
	hubservice *hubservice.HubService
}

func (h *DashboardHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	summary, err := h.hubservice.GetDashboardSummary(r.Context())
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}
