package ports

import (
	"context"
	"time"
)

// WeatherData represents current conditions as reported by a provider
type WeatherData struct {
	Location       string
	Temperature    float64
	Description    string
	Humidity       int
	WindSpeed      float64
	Icon           string
	TimezoneOffset int
	Sunrise        time.Time
	Sunset         time.Time
	Timestamp      time.Time
}

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// WeatherProvider defines the contract for weather data providers
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, city string) (*WeatherData, error)
	GetWeatherByCoordinates(ctx context.Context, coords Coordinates) (*WeatherData, error)
	GetProviderName() string
}
