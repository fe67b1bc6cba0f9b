// FilePath: internal/errors/errors_test.go
package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypeStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("m", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, NewDatabaseError("m", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, NewAuthError("m", nil).Code)
	assert.Equal(t, http.StatusForbidden, NewAuthorizationError("m", nil).Code)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("m", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("m", nil).Code)
}

func TestInternalErrorNeverSerialized(t *testing.T) {
	inner := stderrors.New("pq: connection refused at 10.0.0.5")
	apiErr := NewDatabaseError("failed to list alerts", inner)

	payload, err := json.Marshal(apiErr)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "10.0.0.5")
	assert.Contains(t, string(payload), "failed to list alerts")

	// But it stays reachable for logging and errors.Is.
	assert.True(t, stderrors.Is(apiErr, inner))
}

func TestAsAPIError(t *testing.T) {
	typed := NewNotFoundError("hive not found", nil)
	assert.Same(t, typed, AsAPIError(typed))

	wrapped := AsAPIError(stderrors.New("boom"))
	assert.Equal(t, ErrorTypeInternal, wrapped.Type)
	assert.Equal(t, "unexpected error", wrapped.Message)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("m", nil)))
	assert.False(t, IsNotFound(NewValidationError("m", nil)))
	assert.True(t, IsValidation(NewValidationError("m", nil)))
	assert.False(t, IsValidation(stderrors.New("plain")))
}

func TestWithRequestIDAndDetails(t *testing.T) {
	apiErr := NewValidationError("missing required fields", nil).
		WithRequestID("req_123").
		WithDetails([]string{"identificador", "apiario"})

	payload, err := json.Marshal(apiErr)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "req_123")
	assert.Contains(t, string(payload), "identificador")
}
