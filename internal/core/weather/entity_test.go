package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"skycast.app/internal/core/theme"
)

var (
	testSunrise = time.Date(2024, 6, 21, 4, 43, 0, 0, time.UTC)
	testSunset  = time.Date(2024, 6, 21, 21, 21, 0, 0, time.UTC)
)

func validSnapshot() Snapshot {
	return Snapshot{
		Location:       "London",
		Temperature:    18.6,
		Description:    "clear sky",
		Humidity:       60,
		WindSpeed:      3.1,
		Icon:           "01d",
		TimezoneOffset: 3600,
		Sunrise:        testSunrise,
		Sunset:         testSunset,
	}
}

func TestSnapshot_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Snapshot)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "ValidSnapshot",
			mutate: func(s *Snapshot) {},
		},
		{
			name:    "EmptyLocation",
			mutate:  func(s *Snapshot) { s.Location = "  " },
			wantErr: true,
			errMsg:  "location cannot be empty",
		},
		{
			name:    "EmptyDescription",
			mutate:  func(s *Snapshot) { s.Description = "" },
			wantErr: true,
			errMsg:  "description cannot be empty",
		},
		{
			name:    "TemperatureBelowAbsoluteZero",
			mutate:  func(s *Snapshot) { s.Temperature = -274 },
			wantErr: true,
			errMsg:  "absolute zero",
		},
		{
			name:    "NegativeHumidity",
			mutate:  func(s *Snapshot) { s.Humidity = -1 },
			wantErr: true,
			errMsg:  "humidity must be between 0 and 100",
		},
		{
			name:    "HumidityOverOneHundred",
			mutate:  func(s *Snapshot) { s.Humidity = 101 },
			wantErr: true,
			errMsg:  "humidity must be between 0 and 100",
		},
		{
			name:   "HumidityBounds",
			mutate: func(s *Snapshot) { s.Humidity = 100 },
		},
		{
			name:    "NegativeWindSpeed",
			mutate:  func(s *Snapshot) { s.WindSpeed = -0.5 },
			wantErr: true,
			errMsg:  "wind speed",
		},
		{
			name:    "MissingSunrise",
			mutate:  func(s *Snapshot) { s.Sunrise = time.Time{} },
			wantErr: true,
			errMsg:  "sunrise and sunset are required",
		},
		{
			name:    "SunsetBeforeSunrise",
			mutate:  func(s *Snapshot) { s.Sunrise, s.Sunset = s.Sunset, s.Sunrise },
			wantErr: true,
			errMsg:  "sunrise must be before sunset",
		},
		{
			name:    "SunriseEqualsSunset",
			mutate:  func(s *Snapshot) { s.Sunset = s.Sunrise },
			wantErr: true,
			errMsg:  "sunrise must be before sunset",
		},
		{
			name:    "TimezoneOutOfRange",
			mutate:  func(s *Snapshot) { s.TimezoneOffset = 15 * 3600 },
			wantErr: true,
			errMsg:  "timezone offset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := validSnapshot()
			tt.mutate(&snapshot)

			err := snapshot.IsValid()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSnapshot_RoundedTemperature(t *testing.T) {
	tests := []struct {
		temperature float64
		expected    int
	}{
		{18.4, 18},
		{18.5, 19},
		{-0.4, 0},
		{-2.5, -3},
		{0, 0},
	}

	for _, tt := range tests {
		s := Snapshot{Temperature: tt.temperature}
		assert.Equal(t, tt.expected, s.RoundedTemperature(), "temperature %v", tt.temperature)
	}
}

func TestSnapshot_LocalTime(t *testing.T) {
	s := Snapshot{TimezoneOffset: -5 * 3600}
	local := s.LocalTime(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, 7, local.Hour())
	_, offset := local.Zone()
	assert.Equal(t, -5*3600, offset)
}

func TestCityRequest(t *testing.T) {
	assert.NoError(t, (&CityRequest{City: "Paris"}).IsValid())
	assert.Error(t, (&CityRequest{City: " \t"}).IsValid())

	request := CityRequest{City: "  New York  "}
	request.NormalizeCity()
	assert.Equal(t, "New York", request.City)
}

func TestCoordinatesRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request CoordinatesRequest
		errMsg  string
	}{
		{name: "Valid", request: CoordinatesRequest{Latitude: 51.5, Longitude: -0.12}},
		{name: "Poles", request: CoordinatesRequest{Latitude: -90, Longitude: 180}},
		{name: "LatitudeTooHigh", request: CoordinatesRequest{Latitude: 90.1}, errMsg: "latitude"},
		{name: "LongitudeTooLow", request: CoordinatesRequest{Longitude: -180.5}, errMsg: "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDecorationsFor(t *testing.T) {
	tests := []struct {
		name        string
		description string
		icon        string
		condition   theme.Condition
		expected    Decorations
	}{
		{name: "ClearDay", description: "clear sky", icon: "01d", condition: theme.Clear, expected: Decorations{Sun: true}},
		{name: "ClearNight", description: "clear sky", icon: "01n", condition: theme.Clear, expected: Decorations{Moon: true}},
		{name: "ClearWithoutIcon", description: "clear sky", icon: "", condition: theme.Clear, expected: Decorations{}},
		{name: "CloudyDayNoSun", description: "broken clouds", icon: "04d", condition: theme.Cloudy, expected: Decorations{}},
		{name: "LightRain", description: "light rain", icon: "10d", condition: theme.Rain, expected: Decorations{Rain: true}},
		{name: "Drizzle", description: "Light Intensity Drizzle", icon: "09n", condition: theme.Rain, expected: Decorations{Rain: true}},
		{name: "ThunderstormWithRain", description: "thunderstorm with rain", icon: "11d", condition: theme.Thunderstorm, expected: Decorations{Rain: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Snapshot{Description: tt.description, Icon: tt.icon}
			assert.Equal(t, tt.expected, decorationsFor(&s, tt.condition))
		})
	}
}
