package app

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"skycast.app/internal/adapters/external"
	"skycast.app/internal/adapters/infrastructure"
	"skycast.app/internal/config"
	"skycast.app/internal/ports"
)

type DependencyContainer struct {
	config     DependencyConfig
	appConfig  *config.Config
	ports      *ports.ApplicationPorts
	metrics    *infrastructure.PrometheusMetricsAdapter
	fileLogger *infrastructure.FileLoggerAdapter
}

type DependencyConfig struct {
	// Registerer defaults to prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
	// Logger defaults to slog.Default
	Logger *slog.Logger
}

func NewDependencyContainer(depConfig DependencyConfig, appConfig *config.Config) (*DependencyContainer, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("application config is required")
	}

	container := &DependencyContainer{
		config:    depConfig,
		appConfig: appConfig,
	}

	if err := container.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	registerer := c.config.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(c.config.Logger)

	// Upstream calls additionally go to a JSON lines file when enabled
	weatherCfg := c.appConfig.Weather
	if weatherCfg.EnableLogging && weatherCfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherCfg.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			logger = infrastructure.NewMultiLogger(logger, fileLogger)
			slog.Info("File logging enabled", "path", weatherCfg.LogFilePath)
		}
	}

	var provider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  weatherCfg.OpenWeatherMapKey,
		BaseURL: weatherCfg.OpenWeatherMapBaseURL,
		Timeout: weatherCfg.RequestTimeout(),
		Logger:  logger,
	})

	var locator ports.IPLocator = external.NewIPAPILocatorAdapter(external.IPAPILocatorParams{
		BaseURL: c.appConfig.Geo.IPBaseURL,
		Timeout: c.appConfig.Geo.RequestTimeout(),
		Logger:  logger,
	})

	if weatherCfg.EnableLogging {
		provider = external.NewWeatherProviderLoggingDecorator(provider, logger)
		locator = external.NewIPLocatorLoggingDecorator(locator, logger)
		slog.Info("Upstream call logging enabled")
	}

	c.metrics = infrastructure.NewPrometheusMetricsAdapter(registerer)

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: provider,
		Locator:         locator,
		ConfigProvider:  infrastructure.NewConfigProviderAdapter(c.appConfig),
		Logger:          logger,
		Metrics:         c.metrics,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// MetricsCollector returns the Prometheus adapter behind the metrics port
func (c *DependencyContainer) MetricsCollector() *infrastructure.PrometheusMetricsAdapter {
	return c.metrics
}

// Cleanup releases resources held by the container
func (c *DependencyContainer) Cleanup() error {
	if c.fileLogger != nil {
		return c.fileLogger.Close()
	}
	return nil
}
