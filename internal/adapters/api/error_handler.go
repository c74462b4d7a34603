package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "skycast.app/pkg/errors"
)

const msgInternal = "Internal server error"

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		s.logger.Error("unhandled error", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ExternalAPIError:
		statusCode = http.StatusServiceUnavailable
		message = appErr.Message
	default:
		s.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		statusCode = http.StatusInternalServerError
		message = msgInternal
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}
