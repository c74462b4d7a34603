package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"skycast.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := &HTTPServerAdapter{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", errors.NewValidationError("City parameter is required"), http.StatusBadRequest, "City parameter is required"},
		{"not found", errors.NewNotFoundError("City not found"), http.StatusNotFound, "City not found"},
		{"external api", errors.NewExternalAPIError("Failed to detect location from IP", stderrors.New("dial tcp")), http.StatusServiceUnavailable, "Failed to detect location from IP"},
		{"configuration", errors.NewConfigurationError("missing api key", nil), http.StatusInternalServerError, msgInternal},
		{"unknown type", errors.New(errors.ErrorTypeUnknown, "generic error"), http.StatusInternalServerError, msgInternal},
		{"plain error", stderrors.New("boom"), http.StatusInternalServerError, msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			server.handleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantError, response.Error)
		})
	}
}

func TestHTTPServerAdapter_HandleError_UsesOutermostAppError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := &HTTPServerAdapter{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	inner := errors.NewNotFoundError("City not found")
	outer := errors.NewExternalAPIError("Failed to fetch weather data", inner)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	server.handleError(c, outer)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch weather data"}`, w.Body.String())
}
