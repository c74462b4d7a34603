package weather

import (
	"fmt"
	"math"
	"strings"
	"time"

	"skycast.app/internal/core/theme"
	"skycast.app/pkg/validation"
)

// Snapshot represents current conditions for one location at one moment
type Snapshot struct {
	Location       string
	Temperature    float64
	Description    string
	Humidity       int
	WindSpeed      float64
	Icon           string
	TimezoneOffset int
	Sunrise        time.Time
	Sunset         time.Time
}

// Location represents an approximate location detected from an IP address
type Location struct {
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CityRequest represents a lookup by city name
type CityRequest struct {
	City string
}

// CoordinatesRequest represents a lookup by coordinates
type CoordinatesRequest struct {
	Latitude  float64
	Longitude float64
}

// SceneRequest selects the location of a scene. With no city and no
// coordinates the location is detected from ClientIP.
type SceneRequest struct {
	City        string
	Coordinates *CoordinatesRequest
	ClientIP    string
}

// Decorations are the animated extras drawn over the sky
type Decorations struct {
	Sun  bool `json:"sun"`
	Moon bool `json:"moon"`
	Rain bool `json:"rain"`
}

// Scene is a snapshot together with everything needed to render it
type Scene struct {
	Snapshot    Snapshot
	Location    *Location
	Resolution  theme.Result
	Decorations Decorations
	ResolvedAt  time.Time
}

// IsValid validates snapshot data
func (s *Snapshot) IsValid() error {
	if strings.TrimSpace(s.Location) == "" {
		return fmt.Errorf("location cannot be empty")
	}
	if strings.TrimSpace(s.Description) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if s.Temperature < -273.15 {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if s.Humidity < 0 || s.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if s.WindSpeed < 0 {
		return fmt.Errorf("wind speed cannot be negative")
	}
	if s.Sunrise.IsZero() || s.Sunset.IsZero() {
		return fmt.Errorf("sunrise and sunset are required")
	}
	if !s.Sunrise.Before(s.Sunset) {
		return fmt.Errorf("sunrise must be before sunset")
	}
	if !validation.IsValidTimezoneOffset(s.TimezoneOffset) {
		return fmt.Errorf("timezone offset %d is out of range", s.TimezoneOffset)
	}
	return nil
}

// RoundedTemperature returns the temperature rounded half away from zero
func (s *Snapshot) RoundedTemperature() int {
	return int(math.Round(s.Temperature))
}

// LocalTime returns t shifted into the snapshot's timezone
func (s *Snapshot) LocalTime(t time.Time) time.Time {
	return t.In(time.FixedZone("", s.TimezoneOffset))
}

// String returns a string representation of the snapshot
func (s *Snapshot) String() string {
	return fmt.Sprintf("%s: %d°C, %d%% humidity, %s", s.Location, s.RoundedTemperature(), s.Humidity, s.Description)
}

// IsValid validates city request
func (r *CityRequest) IsValid() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	return nil
}

// NormalizeCity normalizes city name for consistent processing
func (r *CityRequest) NormalizeCity() {
	r.City = strings.TrimSpace(r.City)
}

// IsValid validates coordinates request
func (r *CoordinatesRequest) IsValid() error {
	if !validation.IsValidLatitude(r.Latitude) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if !validation.IsValidLongitude(r.Longitude) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// decorationsFor picks sun and moon from the provider icon's day/night suffix,
// not from the resolved period.
func decorationsFor(s *Snapshot, condition theme.Condition) Decorations {
	var d Decorations
	if condition == theme.Clear {
		if night, ok := theme.ProviderNightCode(s.Icon); ok {
			d.Sun = !night
			d.Moon = night
		}
	}
	lower := strings.ToLower(s.Description)
	d.Rain = strings.Contains(lower, "rain") || strings.Contains(lower, "drizzle")
	return d
}
