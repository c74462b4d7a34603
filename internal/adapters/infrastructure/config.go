package infrastructure

import (
	"time"

	"skycast.app/internal/config"
	"skycast.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port:           c.config.Server.Port,
		AllowedOrigins: append([]string(nil), c.config.Server.AllowedOrigins...),
	}
}

// GetWeatherConfig returns weather provider configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		Provider:       "openweathermap",
		BaseURL:        c.config.Weather.OpenWeatherMapBaseURL,
		RequestTimeout: c.config.Weather.RequestTimeout(),
	}
}

// GetGeolocationConfig returns location detection configuration
func (c *ConfigProviderAdapter) GetGeolocationConfig() ports.GeolocationConfig {
	geo := c.config.Geo
	return ports.GeolocationConfig{
		IPBaseURL:          geo.IPBaseURL,
		RequestTimeout:     geo.RequestTimeout(),
		DeviceTimeout:      seconds(geo.DeviceTimeoutSeconds),
		DeviceRetryTimeout: seconds(geo.DeviceRetryTimeoutSeconds),
		DeviceRetryMaxAge:  seconds(geo.DeviceRetryMaxAgeSeconds),
	}
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
