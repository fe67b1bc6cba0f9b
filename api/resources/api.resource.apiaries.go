// FilePath: api/resources/api.resource.apiaries.go
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

// ApiaryHandlers encapsulates the apiary-related HTTP handlers. All
// operations are scoped to the authenticated user's own apiaries.
type ApiaryHandlers struct {
	hubservice *hubservice.HubService
}

func (h *ApiaryHandlers) ListApiaries(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	apiaries, err := h.hubservice.ListApiaries(r.Context())
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, apiaries)
}

func (h *ApiaryHandlers) CreateApiary(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var apiary models.Apiary
	if err := json.NewDecoder(r.Body).Decode(&apiary); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	if err := h.hubservice.CreateApiary(r.Context(), &apiary); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusCreated, apiary)
}

func (h *ApiaryHandlers) UpdateApiary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	var apiary models.Apiary
	if err := json.NewDecoder(r.Body).Decode(&apiary); err != nil {
		respondWithError(w, errors.NewValidationError("invalid request body", err).WithRequestID(requestID))
		return
	}

	apiary.ID = vars["id"]
	updated, err := h.hubservice.UpdateApiary(r.Context(), &apiary)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *ApiaryHandlers) DeleteApiary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	if err := h.hubservice.DeleteApiary(r.Context(), vars["id"]); err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
