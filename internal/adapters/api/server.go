// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"skycast.app/internal/core/geolocation"
	"skycast.app/internal/core/weather"
	"skycast.app/internal/ports"
	"skycast.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	weatherUseCase   WeatherUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	policy           geolocation.Policy
	logger           *slog.Logger
}

// WeatherUseCase is the use case surface the HTTP adapter depends on
type WeatherUseCase interface {
	GetByCity(ctx context.Context, request weather.CityRequest) (*weather.Snapshot, error)
	GetByCoordinates(ctx context.Context, request weather.CoordinatesRequest) (*weather.Snapshot, error)
	DetectLocation(ctx context.Context, ip string) (*weather.Location, error)
	GetScene(ctx context.Context, request weather.SceneRequest) (*weather.Scene, error)
	ResolveScene(snapshot weather.Snapshot, now time.Time) weather.Scene
	GetProviderInfo(ctx context.Context) map[string]interface{}
	Now() time.Time
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	WeatherUseCase      WeatherUseCase
	MetricsCollector    MetricsCollector
	SystemHealthChecker ports.SystemHealthChecker
	// Policy defaults to geolocation.DefaultPolicy
	Policy *geolocation.Policy
	// Logger defaults to slog.Default
	Logger *slog.Logger
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	policy := geolocation.DefaultPolicy()
	if opts.Policy != nil {
		policy = *opts.Policy
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid geolocation policy: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(logger), corsMiddleware(opts.Config.AllowedOrigins))

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		weatherUseCase:   opts.WeatherUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.SystemHealthChecker,
		policy:           policy,
		logger:           logger,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/weather-by-coords", s.getWeatherByCoordinates)
		api.GET("/detect-location", s.detectLocation)
		api.GET("/scene", s.getScene)
		api.POST("/theme", s.resolveTheme)
		api.GET("/geolocation/policy", s.getGeolocationPolicy)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter returns the router for the HTTP server and tests
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
