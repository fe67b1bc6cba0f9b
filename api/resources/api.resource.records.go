// FilePath: api/resources/api.resource.records.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/hubservice"
	"github.com/smarthive/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// RecordHandlers encapsulates the observation-record HTTP handlers
type RecordHandlers struct {
	hubservice *hubservice.HubService
}

func (h *RecordHandlers) ListRecords(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var filters models.RecordFilters
	if err := decodeQuery(&filters, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	records, err := h.hubservice.ListRecords(r.Context(), filters)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, records)
}

// CreateRecord accepts the documented field aliases (colmeia or hive, tipo
// or kind, valor or value) and normalizes them before validation.
func (h *RecordHandlers) CreateRecord(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var input models.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	record := input.Normalize()
	if err := h.hubservice.CreateRecord(r.Context(), record); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusCreated, record)
}

type simulateRequest struct {
	HiveID      string `json:"colmeia"`
	HiveIDAlias string `json:"hive"`
}

// SimulateRecord creates a randomized camera observation, as the hive
// camera would submit.
func (h *RecordHandlers) SimulateRecord(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var body simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	hiveID := body.HiveID
	if hiveID == "" {
		hiveID = body.HiveIDAlias
	}

	record, err := h.hubservice.SimulateCameraRecord(r.Context(), hiveID)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusCreated, record)
}
