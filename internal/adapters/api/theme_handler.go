package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"skycast.app/internal/core/weather"
	"skycast.app/pkg/errors"
	"skycast.app/pkg/validation"
)

// ThemeRequest is the body of POST /api/theme. Times are epoch seconds.
type ThemeRequest struct {
	Description string `json:"description" binding:"required"`
	Sunrise     int64  `json:"sunrise" binding:"required,gt=0,ltfield=Sunset"`
	Sunset      int64  `json:"sunset" binding:"required,gt=0"`
	Now         *int64 `json:"now" binding:"omitempty,gt=0"`
	Timezone    *int   `json:"timezone" binding:"omitempty,tzoffset"`
	Icon        string `json:"icon" binding:"omitempty,max=8"`
}

// RegisterValidators adds the custom request validations to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("gin validator engine is not go-playground/validator", nil)
	}
	return v.RegisterValidation("tzoffset", func(fl validator.FieldLevel) bool {
		return validation.IsValidTimezoneOffset(int(fl.Field().Int()))
	})
}

// resolveTheme handles POST /api/theme requests
func (s *HTTPServerAdapter) resolveTheme(c *gin.Context) {
	var request ThemeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.logger.Debug("invalid theme request", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request: description, sunrise and sunset are required and sunrise must be before sunset"))
		return
	}

	now := s.weatherUseCase.Now()
	if request.Now != nil {
		now = time.Unix(*request.Now, 0).UTC()
	}

	snapshot := weather.Snapshot{
		Description: request.Description,
		Icon:        request.Icon,
		Sunrise:     time.Unix(request.Sunrise, 0).UTC(),
		Sunset:      time.Unix(request.Sunset, 0).UTC(),
	}
	if request.Timezone != nil {
		snapshot.TimezoneOffset = *request.Timezone
	}

	scene := s.weatherUseCase.ResolveScene(snapshot, now)
	c.JSON(http.StatusOK, resolutionResponse(&scene))
}
