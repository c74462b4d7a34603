package ports

import "time"

// WeatherConfig represents weather provider configuration
type WeatherConfig struct {
	Provider       string
	BaseURL        string
	RequestTimeout time.Duration
}

// GeolocationConfig represents location detection configuration
type GeolocationConfig struct {
	IPBaseURL          string
	RequestTimeout     time.Duration
	DeviceTimeout      time.Duration
	DeviceRetryTimeout time.Duration
	DeviceRetryMaxAge  time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetGeolocationConfig() GeolocationConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Upstream call outcomes reported to MetricsCollector
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordUpstreamCall(provider, operation, outcome string, duration time.Duration)
	RecordScene(period, condition string)
}
