package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"skycast.app/pkg/errors"
)

const (
	maxPortNumber     = 65535
	maxTimeoutSeconds = 120
)

// Config represents the application configuration structure
type Config struct {
	Server  ServerConfig      `split_words:"true"`
	Weather WeatherConfig     `split_words:"true"`
	Geo     GeolocationConfig `split_words:"true"`
	Log     LogConfig         `split_words:"true"`
}

type ServerConfig struct {
	Port                   int      `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSeconds     int      `envconfig:"SERVER_READ_TIMEOUT_SECONDS" default:"10"`
	WriteTimeoutSeconds    int      `envconfig:"SERVER_WRITE_TIMEOUT_SECONDS" default:"30"`
	ShutdownTimeoutSeconds int      `envconfig:"SERVER_SHUTDOWN_TIMEOUT_SECONDS" default:"30"`
	AllowedOrigins         []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	RequestTimeoutSeconds int    `envconfig:"WEATHER_REQUEST_TIMEOUT_SECONDS" default:"10"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/upstream.log"`
}

func (w WeatherConfig) RequestTimeout() time.Duration {
	return time.Duration(w.RequestTimeoutSeconds) * time.Second
}

// GeolocationConfig covers the IP locator and the device geolocation
// attempt policy published to clients.
type GeolocationConfig struct {
	IPBaseURL                 string `envconfig:"GEO_IP_BASE_URL" default:"http://ip-api.com"`
	RequestTimeoutSeconds     int    `envconfig:"GEO_REQUEST_TIMEOUT_SECONDS" default:"5"`
	DeviceTimeoutSeconds      int    `envconfig:"GEO_DEVICE_TIMEOUT_SECONDS" default:"15"`
	DeviceRetryTimeoutSeconds int    `envconfig:"GEO_DEVICE_RETRY_TIMEOUT_SECONDS" default:"30"`
	DeviceRetryMaxAgeSeconds  int    `envconfig:"GEO_DEVICE_RETRY_MAX_AGE_SECONDS" default:"60"`
}

func (g GeolocationConfig) RequestTimeout() time.Duration {
	return time.Duration(g.RequestTimeoutSeconds) * time.Second
}

// LogFormat selects the slog handler
type LogFormat int

const (
	LogFormatUnknown LogFormat = iota
	LogFormatJSON
	LogFormatText
)

// String returns the string representation of log format
func (f LogFormat) String() string {
	switch f {
	case LogFormatJSON:
		return "json"
	case LogFormatText:
		return "text"
	default:
		return "unknown"
	}
}

// IsValid checks if the log format is valid
func (f LogFormat) IsValid() bool {
	return f == LogFormatJSON || f == LogFormatText
}

// LogFormatFromString converts string to LogFormat enum
func LogFormatFromString(s string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return LogFormatJSON
	case "text":
		return LogFormatText
	default:
		return LogFormatUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (f *LogFormat) UnmarshalText(text []byte) error {
	*f = LogFormatFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (f LogFormat) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

type LogConfig struct {
	Level  string    `envconfig:"LOG_LEVEL" default:"info"`
	Format LogFormat `envconfig:"LOG_FORMAT" default:"json"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Geo.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if s.ReadTimeoutSeconds < 1 || s.WriteTimeoutSeconds < 1 || s.ShutdownTimeoutSeconds < 1 {
		return errors.NewConfigurationError("server timeouts must be at least 1 second", nil)
	}
	for _, origin := range s.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if err := validateHTTPURL("CORS_ALLOWED_ORIGINS", origin); err != nil {
			return err
		}
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.OpenWeatherMapKey) == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be configured", nil)
	}
	if err := validateHTTPURL("OPENWEATHERMAP_API_BASE_URL", w.OpenWeatherMapBaseURL); err != nil {
		return err
	}
	if err := validateTimeout("WEATHER_REQUEST_TIMEOUT_SECONDS", w.RequestTimeoutSeconds); err != nil {
		return err
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is set", nil)
	}
	return nil
}

func (g *GeolocationConfig) Validate() error {
	if err := validateHTTPURL("GEO_IP_BASE_URL", g.IPBaseURL); err != nil {
		return err
	}
	if err := validateTimeout("GEO_REQUEST_TIMEOUT_SECONDS", g.RequestTimeoutSeconds); err != nil {
		return err
	}
	if err := validateTimeout("GEO_DEVICE_TIMEOUT_SECONDS", g.DeviceTimeoutSeconds); err != nil {
		return err
	}
	if err := validateTimeout("GEO_DEVICE_RETRY_TIMEOUT_SECONDS", g.DeviceRetryTimeoutSeconds); err != nil {
		return err
	}
	if g.DeviceRetryMaxAgeSeconds < 0 {
		return errors.NewConfigurationError("GEO_DEVICE_RETRY_MAX_AGE_SECONDS cannot be negative", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	if !l.Format.IsValid() {
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	return nil
}

func validateHTTPURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(fmt.Sprintf("%s cannot be empty", name), nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(fmt.Sprintf("%s must start with http:// or https://", name), nil)
	}
	return nil
}

func validateTimeout(name string, seconds int) error {
	if seconds < 1 || seconds > maxTimeoutSeconds {
		return errors.NewConfigurationError(fmt.Sprintf("%s must be between 1 and %d seconds", name, maxTimeoutSeconds), nil)
	}
	return nil
}
