package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusHealthy = "healthy"

// getGeolocationPolicy handles GET /api/geolocation/policy requests
func (s *HTTPServerAdapter) getGeolocationPolicy(c *gin.Context) {
	c.JSON(http.StatusOK, s.policy.Document())
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status, code := statusHealthy, http.StatusOK
	for _, result := range results {
		if result.Status != statusHealthy {
			status, code = "unhealthy", http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, gin.H{"status": status, "components": results})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		s.logger.Error("Error getting metrics", "error", err)
		s.handleError(c, err)
		return
	}

	metrics["providers"] = s.weatherUseCase.GetProviderInfo(c.Request.Context())
	c.JSON(http.StatusOK, metrics)
}
