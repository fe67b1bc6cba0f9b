// FilePath: api/resources/api.resource.alerts.go
package resources

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/hubservice"
	"github.com/smarthive/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// AlertHandlers encapsulates the alert HTTP handlers, including the
// live event stream.
type AlertHandlers struct {
	hubservice   *hubservice.HubService
	pingInterval time.Duration
}

func (h *AlertHandlers) ListAlerts(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var filters models.AlertFilters
	if err := decodeQuery(&filters, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	alerts, err := h.hubservice.ListAlerts(r.Context(), filters)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, alerts)
}

func (h *AlertHandlers) AcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	alert, err := h.hubservice.AcknowledgeAlert(r.Context(), vars["id"])
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, alert)
}

// StreamAlerts is the push fan-out endpoint: a long-lived one-way
// text/event-stream connection. Every alert published on the bus while the
// client is connected arrives as an `alerta` event; a `ping` event goes out
// every 25 seconds to survive idle-timeout intermediaries. There is no
// replay: alerts published before the subscription never show up here.
func (h *AlertHandlers) StreamAlerts(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, errors.NewInternalError("streaming unsupported", nil))
		return
	}

	clientID := nuts.NID("sse", 12)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := h.hubservice.AlertBus.Subscribe()
	defer h.hubservice.AlertBus.Unsubscribe(sub)

	pingInterval := h.pingInterval
	if pingInterval <= 0 {
		pingInterval = 25 * time.Second
	}
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	nuts.L.Infof("[AlertStream] Client %s connected", clientID)
	defer nuts.L.Infof("[AlertStream] Client %s disconnected", clientID)

	for {
		select {
		case alert, open := <-sub:
			if !open {
				// Broker shut down.
				return
			}
			if err := writeSSEEvent(w, flusher, "alerta", alert); err != nil {
				return
			}

		case <-ticker.C:
			if err := writeSSEEvent(w, flusher, "ping", map[string]any{}); err != nil {
				return
			}

		case <-r.Context().Done():
			// Client went away; the deferred unsubscribe removes us from
			// the broadcast set.
			return
		}
	}
}

func writeSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
