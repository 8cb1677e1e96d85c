package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-reservations/backend/internal/handler/gen"
)

// TestGetHealth_returns200WithOKStatus verifies that GET /healthz returns
// HTTP 200 and a JSON body of {"status":"ok"}.
func TestGetHealth_returns200WithOKStatus(t *testing.T) {
	rec := serve(t, newHTTPHandler(services{}), http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[gen.HealthResponse](t, rec).Status)
}

func TestGetOpenAPI_servesDocument(t *testing.T) {
	rec := serve(t, newHTTPHandler(services{}), http.MethodGet, "/openapi.yaml", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/reservations/{id}/check-out")
}

func TestUnknownRoute_404(t *testing.T) {
	rec := serve(t, newHTTPHandler(services{}), http.MethodGet, "/guests", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
