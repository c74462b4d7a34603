package infrastructure

import (
	"context"

	"skycast.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	weatherChecker ports.HealthChecker
	locatorChecker ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	WeatherChecker ports.HealthChecker
	LocatorChecker ports.HealthChecker
	ConfigProvider ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		weatherChecker: config.WeatherChecker,
		locatorChecker: config.LocatorChecker,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.weatherChecker != nil {
		results["weatherProvider"] = s.weatherChecker.Check(ctx)
	}

	if s.locatorChecker != nil {
		results["locator"] = s.locatorChecker.Check(ctx)
	}

	if s.configProvider != nil {
		server := s.configProvider.GetServerConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"port":           server.Port,
				"allowedOrigins": server.AllowedOrigins,
			},
		}
	}

	return results
}

// IsHealthy reports whether every status in results is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != statusHealthy {
			return false
		}
	}
	return true
}
