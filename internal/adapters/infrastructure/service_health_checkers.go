package infrastructure

import (
	"context"

	"skycast.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// WeatherProviderHealthChecker reports whether a weather provider is wired and configured
type WeatherProviderHealthChecker struct {
	provider ports.WeatherProvider
	config   ports.WeatherConfig
}

// NewWeatherProviderHealthChecker creates a new weather provider health checker
func NewWeatherProviderHealthChecker(provider ports.WeatherProvider, config ports.WeatherConfig) *WeatherProviderHealthChecker {
	return &WeatherProviderHealthChecker{provider: provider, config: config}
}

// Check verifies the weather provider is available without calling the upstream API
func (w *WeatherProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherProvider",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"baseURL":        w.config.BaseURL,
			"requestTimeout": w.config.RequestTimeout.String(),
		},
	}

	if w.provider == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not available"
		return status
	}

	status.Details["provider"] = w.provider.GetProviderName()
	return status
}

// LocatorHealthChecker reports whether the IP locator is wired
type LocatorHealthChecker struct {
	locator ports.IPLocator
	config  ports.GeolocationConfig
}

// NewLocatorHealthChecker creates a new IP locator health checker
func NewLocatorHealthChecker(locator ports.IPLocator, config ports.GeolocationConfig) *LocatorHealthChecker {
	return &LocatorHealthChecker{locator: locator, config: config}
}

// Check verifies the IP locator is available
func (l *LocatorHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "locator",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"baseURL": l.config.IPBaseURL,
		},
	}

	if l.locator == nil {
		status.Status = statusUnhealthy
		status.Error = "IP locator is not available"
		return status
	}

	status.Details["provider"] = l.locator.GetProviderName()
	return status
}
