package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"skycast.app/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			ReadTimeoutSeconds:     10,
			WriteTimeoutSeconds:    30,
			ShutdownTimeoutSeconds: 5,
			AllowedOrigins:         []string{"http://localhost:3000"},
		},
		Weather: config.WeatherConfig{
			OpenWeatherMapKey:     "test-key",
			OpenWeatherMapBaseURL: "http://127.0.0.1:1/data/2.5",
			RequestTimeoutSeconds: 1,
			EnableLogging:         true,
			LogFilePath:           filepath.Join(t.TempDir(), "logs", "upstream.log"),
		},
		Geo: config.GeolocationConfig{
			IPBaseURL:                 "http://127.0.0.1:1",
			RequestTimeoutSeconds:     1,
			DeviceTimeoutSeconds:      20,
			DeviceRetryTimeoutSeconds: 40,
			DeviceRetryMaxAgeSeconds:  90,
		},
		Log: config.LogConfig{Level: "debug", Format: config.LogFormatJSON},
	}
}

func newTestApplication(t *testing.T) (*Application, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig(t)
	deps, err := NewDependencyContainer(DependencyConfig{
		Registerer: prometheus.NewRegistry(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Cleanup() })

	application, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	return application, cfg
}

func TestNewDependencyContainer_RequiresConfig(t *testing.T) {
	_, err := NewDependencyContainer(DependencyConfig{}, nil)
	assert.Error(t, err)
}

func TestNewDependencyContainer_WiresPorts(t *testing.T) {
	cfg := testConfig(t)
	deps, err := NewDependencyContainer(DependencyConfig{Registerer: prometheus.NewRegistry()}, cfg)
	require.NoError(t, err)
	defer deps.Cleanup()

	p := deps.ApplicationPorts()
	require.NotNil(t, p)
	assert.Equal(t, "openweathermap", p.WeatherProvider.GetProviderName())
	assert.Equal(t, "ip-api", p.Locator.GetProviderName())
	assert.NotNil(t, p.Logger)
	assert.NotNil(t, p.Metrics)
	assert.Equal(t, 8080, p.ConfigProvider.GetServerConfig().Port)

	_, err = os.Stat(cfg.Weather.LogFilePath)
	assert.NoError(t, err, "upstream log file should be created")
}

func TestNewDependencyContainer_WithoutFileLogging(t *testing.T) {
	cfg := testConfig(t)
	cfg.Weather.EnableLogging = false

	deps, err := NewDependencyContainer(DependencyConfig{Registerer: prometheus.NewRegistry()}, cfg)
	require.NoError(t, err)

	assert.Nil(t, deps.fileLogger)
	assert.NoError(t, deps.Cleanup())
	_, err = os.Stat(cfg.Weather.LogFilePath)
	assert.True(t, os.IsNotExist(err))
}

func TestApplication_ServesPolicyFromConfig(t *testing.T) {
	application, _ := newTestApplication(t)

	req := httptest.NewRequest(http.MethodGet, "/api/geolocation/policy", nil)
	w := httptest.NewRecorder()
	application.GetRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		Attempts []struct {
			Timeout    int64 `json:"timeout"`
			MaximumAge int64 `json:"maximumAge"`
		} `json:"attempts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Len(t, doc.Attempts, 2)
	assert.EqualValues(t, 20000, doc.Attempts[0].Timeout)
	assert.EqualValues(t, 40000, doc.Attempts[1].Timeout)
	assert.EqualValues(t, 90000, doc.Attempts[1].MaximumAge)
}

func TestApplication_HealthAndValidation(t *testing.T) {
	application, _ := newTestApplication(t)
	router := application.GetRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weatherProvider")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"City parameter is required"}`, w.Body.String())
}

func TestApplication_Accessors(t *testing.T) {
	application, cfg := newTestApplication(t)

	assert.Same(t, cfg, application.Config())
	assert.NotNil(t, application.GetWeatherUseCase())
	assert.Equal(t, ":8080", application.httpServer.Addr)
	assert.Equal(t, cfg.Server.ReadTimeout(), application.httpServer.ReadTimeout)
}
