package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"skycast.app/internal/ports"
)

// WeatherProvider is a mock of ports.WeatherProvider
type WeatherProvider struct {
	mock.Mock
}

// NewWeatherProvider creates a WeatherProvider mock whose expectations are asserted on cleanup
func NewWeatherProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *WeatherProvider {
	m := &WeatherProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WeatherProvider) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	args := m.Called(ctx, city)
	data, _ := args.Get(0).(*ports.WeatherData)
	return data, args.Error(1)
}

func (m *WeatherProvider) GetWeatherByCoordinates(ctx context.Context, coords ports.Coordinates) (*ports.WeatherData, error) {
	args := m.Called(ctx, coords)
	data, _ := args.Get(0).(*ports.WeatherData)
	return data, args.Error(1)
}

func (m *WeatherProvider) GetProviderName() string {
	return m.Called().String(0)
}

// IPLocator is a mock of ports.IPLocator
type IPLocator struct {
	mock.Mock
}

// NewIPLocator creates an IPLocator mock whose expectations are asserted on cleanup
func NewIPLocator(t interface {
	mock.TestingT
	Cleanup(func())
}) *IPLocator {
	m := &IPLocator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *IPLocator) DetectLocation(ctx context.Context, ip string) (*ports.LocationData, error) {
	args := m.Called(ctx, ip)
	data, _ := args.Get(0).(*ports.LocationData)
	return data, args.Error(1)
}

func (m *IPLocator) GetProviderName() string {
	return m.Called().String(0)
}
