// FilePath: api/resources/api.resource.hives.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/smarthive/hub/internal/errors"
	"github.com/smarthive/hub/internal/hubservice"
	"github.com/smarthive/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// HiveHandlers encapsulates the hive-related HTTP handlers
type HiveHandlers struct {
	hubservice *hubservice.HubService
}

func (h *HiveHandlers) ListHives(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var filters models.HiveFilters
	if err := decodeQuery(&filters, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	hives, err := h.hubservice.ListHives(r.Context(), filters)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, hives)
}

func (h *HiveHandlers) GetHive(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	hive, err := h.hubservice.GetHive(r.Context(), vars["id"])
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, hive)
}

// CreateHive accepts the documented field aliases (identificador,
// identifier or nome; especie or species; apiario or apiary) and
// normalizes them before validation.
func (h *HiveHandlers) CreateHive(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var input models.HiveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	hive := input.Normalize()
	if err := h.hubservice.CreateHive(r.Context(), hive); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusCreated, hive)
}

func (h *HiveHandlers) UpdateHive(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	var input models.HiveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	hive := input.NormalizePartial()
	hive.ID = vars["id"]
	updated, err := h.hubservice.UpdateHive(r.Context(), hive)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *HiveHandlers) DeleteHive(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	if err := h.hubservice.DeleteHive(r.Context(), vars["id"]); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
