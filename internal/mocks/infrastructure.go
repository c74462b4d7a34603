package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"skycast.app/internal/ports"
)

// Logger is a mock of ports.Logger. Fields are passed to Called as a single
// []ports.Field argument.
type Logger struct {
	mock.Mock
}

// NewLogger creates a Logger mock whose expectations are asserted on cleanup
func NewLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	m := &Logger{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// AllowAll accepts any log call at any level
func (m *Logger) AllowAll() *Logger {
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		m.On(level, mock.Anything, mock.Anything).Maybe()
	}
	return m
}

func (m *Logger) Debug(msg string, fields ...ports.Field) { m.Called(msg, fields) }
func (m *Logger) Info(msg string, fields ...ports.Field)  { m.Called(msg, fields) }
func (m *Logger) Warn(msg string, fields ...ports.Field)  { m.Called(msg, fields) }
func (m *Logger) Error(msg string, fields ...ports.Field) { m.Called(msg, fields) }

// MetricsCollector is a mock of ports.MetricsCollector
type MetricsCollector struct {
	mock.Mock
}

// NewMetricsCollector creates a MetricsCollector mock whose expectations are asserted on cleanup
func NewMetricsCollector(t interface {
	mock.TestingT
	Cleanup(func())
}) *MetricsCollector {
	m := &MetricsCollector{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// AllowAll accepts any metric
func (m *MetricsCollector) AllowAll() *MetricsCollector {
	m.On("RecordUpstreamCall", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	m.On("RecordScene", mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *MetricsCollector) RecordUpstreamCall(provider, operation, outcome string, duration time.Duration) {
	m.Called(provider, operation, outcome, duration)
}

func (m *MetricsCollector) RecordScene(period, condition string) {
	m.Called(period, condition)
}

// ConfigProvider is a mock of ports.ConfigProvider
type ConfigProvider struct {
	mock.Mock
}

// NewConfigProvider creates a ConfigProvider mock whose expectations are asserted on cleanup
func NewConfigProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConfigProvider {
	m := &ConfigProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *ConfigProvider) GetWeatherConfig() ports.WeatherConfig {
	return m.Called().Get(0).(ports.WeatherConfig)
}

func (m *ConfigProvider) GetGeolocationConfig() ports.GeolocationConfig {
	return m.Called().Get(0).(ports.GeolocationConfig)
}

func (m *ConfigProvider) GetServerConfig() ports.ServerConfig {
	return m.Called().Get(0).(ports.ServerConfig)
}

// HealthChecker is a mock of ports.HealthChecker
type HealthChecker struct {
	mock.Mock
}

// NewHealthChecker creates a HealthChecker mock whose expectations are asserted on cleanup
func NewHealthChecker(t interface {
	mock.TestingT
	Cleanup(func())
}) *HealthChecker {
	m := &HealthChecker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *HealthChecker) Check(ctx context.Context) ports.HealthStatus {
	return m.Called(ctx).Get(0).(ports.HealthStatus)
}
