package external

import (
	"context"
	"time"

	"skycast.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	return d.logged(ports.F("city", city), func() (*ports.WeatherData, error) {
		return d.provider.GetCurrentWeather(ctx, city)
	})
}

// GetWeatherByCoordinates wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetWeatherByCoordinates(ctx context.Context, coords ports.Coordinates) (*ports.WeatherData, error) {
	return d.logged(ports.F("coordinates", coords), func() (*ports.WeatherData, error) {
		return d.provider.GetWeatherByCoordinates(ctx, coords)
	})
}

func (d *WeatherProviderLoggingDecorator) logged(target ports.Field, call func() (*ports.WeatherData, error)) (*ports.WeatherData, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		target,
		ports.F("event", "request"))

	startTime := time.Now()
	weatherData, err := call()
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			target,
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		target,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("location", weatherData.Location),
		ports.F("temperature", weatherData.Temperature),
		ports.F("description", weatherData.Description),
		ports.F("icon", weatherData.Icon))

	return weatherData, nil
}

// GetProviderName returns the name of the wrapped provider
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// IPLocatorLoggingDecorator decorates IP locators with structured logging
type IPLocatorLoggingDecorator struct {
	locator ports.IPLocator
	logger  ports.Logger
}

// NewIPLocatorLoggingDecorator creates a new logging decorator for IP locators
func NewIPLocatorLoggingDecorator(locator ports.IPLocator, logger ports.Logger) ports.IPLocator {
	return &IPLocatorLoggingDecorator{
		locator: locator,
		logger:  logger,
	}
}

// DetectLocation wraps the locator call with structured logging
func (d *IPLocatorLoggingDecorator) DetectLocation(ctx context.Context, ip string) (*ports.LocationData, error) {
	providerName := d.locator.GetProviderName()
	startTime := time.Now()

	location, err := d.locator.DetectLocation(ctx, ip)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("IP location request failed",
			ports.F("provider", providerName),
			ports.F("ip", ip),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("IP location request completed",
		ports.F("provider", providerName),
		ports.F("ip", ip),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("city", location.City),
		ports.F("country", location.Country))

	return location, nil
}

// GetProviderName returns the name of the wrapped locator
func (d *IPLocatorLoggingDecorator) GetProviderName() string {
	return d.locator.GetProviderName()
}
