package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"skycast.app/internal/adapters/api"
	"skycast.app/internal/adapters/infrastructure"
	"skycast.app/internal/config"
	"skycast.app/internal/core/geolocation"
	"skycast.app/internal/core/weather"
	"skycast.app/internal/ports"
)

type Application struct {
	config *config.Config
	logger *slog.Logger

	// Use Cases
	weatherUseCase *weather.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	deps, err := NewDependencyContainer(DependencyConfig{Logger: logger}, cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: a.ports.WeatherProvider,
		Locator:  a.ports.Locator,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	weatherConfig := a.ports.ConfigProvider.GetWeatherConfig()
	geoConfig := a.ports.ConfigProvider.GetGeolocationConfig()

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		WeatherChecker: infrastructure.NewWeatherProviderHealthChecker(a.ports.WeatherProvider, weatherConfig),
		LocatorChecker: infrastructure.NewLocatorHealthChecker(a.ports.Locator, geoConfig),
		ConfigProvider: a.ports.ConfigProvider,
	})

	startupHealth := systemHealthChecker.CheckAll(context.Background())
	slog.Info("Component health", "healthy", infrastructure.IsHealthy(startupHealth))

	policy := geolocation.NewPolicy(geoConfig.DeviceTimeout, geoConfig.DeviceRetryTimeout, geoConfig.DeviceRetryMaxAge)

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:           a.config.Server.Port,
			AllowedOrigins: a.config.Server.AllowedOrigins,
		},
		WeatherUseCase:      a.weatherUseCase,
		MetricsCollector:    a.deps.MetricsCollector(),
		SystemHealthChecker: systemHealthChecker,
		Policy:              &policy,
		Logger:              a.logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeout(),
		WriteTimeout: a.config.Server.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start serves HTTP until the server is shut down
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetWeatherUseCase returns the weather use case for testing
func (a *Application) GetWeatherUseCase() *weather.UseCase {
	return a.weatherUseCase
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, depContainer *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		logger: loggerOrDefault(depContainer.config.Logger),
		deps:   depContainer,
		ports:  depContainer.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}
