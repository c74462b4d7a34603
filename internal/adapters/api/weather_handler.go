package api

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"skycast.app/internal/core/theme"
	"skycast.app/internal/core/weather"
	"skycast.app/pkg/errors"
	"skycast.app/pkg/validation"
)

const msgCoordinatesRequired = "Latitude and longitude parameters are required"

// WeatherResponse represents weather data in API responses
type WeatherResponse struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Icon        string  `json:"icon"`
	Timezone    int     `json:"timezone"`
	Sunrise     int64   `json:"sunrise"`
	Sunset      int64   `json:"sunset"`
}

// SceneResponse is a weather response with its resolved theme
type SceneResponse struct {
	Weather            *WeatherResponse    `json:"weather,omitempty"`
	Location           *weather.Location   `json:"location,omitempty"`
	Period             theme.DayPeriod     `json:"period"`
	Progress           float64             `json:"progress"`
	Condition          theme.Condition     `json:"condition"`
	Night              bool                `json:"night"`
	Icon               theme.Icon          `json:"icon"`
	Theme              theme.Theme         `json:"theme"`
	SkyClasses         string              `json:"skyClasses"`
	GroundClasses      string              `json:"groundClasses"`
	Decorations        weather.Decorations `json:"decorations"`
	DisplayTemperature *int                `json:"displayTemperature,omitempty"`
	LocalTime          string              `json:"localTime,omitempty"`
	ResolvedAt         int64               `json:"resolvedAt"`
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	city := c.Query("city")

	snapshot, err := s.weatherUseCase.GetByCity(c.Request.Context(), weather.CityRequest{City: city})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWeatherResponse(snapshot))
}

// getWeatherByCoordinates handles GET /api/weather-by-coords requests
func (s *HTTPServerAdapter) getWeatherByCoordinates(c *gin.Context) {
	coords, err := coordinatesFromQuery(c)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if coords == nil {
		s.handleError(c, errors.NewValidationError(msgCoordinatesRequired))
		return
	}

	snapshot, err := s.weatherUseCase.GetByCoordinates(c.Request.Context(), *coords)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWeatherResponse(snapshot))
}

// detectLocation handles GET /api/detect-location requests
func (s *HTTPServerAdapter) detectLocation(c *gin.Context) {
	location, err := s.weatherUseCase.DetectLocation(c.Request.Context(), lookupIP(c))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// getScene handles GET /api/scene requests
func (s *HTTPServerAdapter) getScene(c *gin.Context) {
	coords, err := coordinatesFromQuery(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	scene, err := s.weatherUseCase.GetScene(c.Request.Context(), weather.SceneRequest{
		City:        c.Query("city"),
		Coordinates: coords,
		ClientIP:    lookupIP(c),
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSceneResponse(scene))
}

// coordinatesFromQuery returns nil when neither lat nor lon is present
func coordinatesFromQuery(c *gin.Context) (*weather.CoordinatesRequest, error) {
	rawLat, hasLat := c.GetQuery("lat")
	rawLon, hasLon := c.GetQuery("lon")
	if !hasLat && !hasLon {
		return nil, nil
	}
	if !hasLat || !hasLon {
		return nil, errors.NewValidationError(msgCoordinatesRequired)
	}

	lat, okLat := validation.ParseCoordinate(rawLat)
	lon, okLon := validation.ParseCoordinate(rawLon)
	if !okLat || !okLon {
		return nil, errors.NewValidationError("Latitude and longitude must be numbers")
	}
	return &weather.CoordinatesRequest{Latitude: lat, Longitude: lon}, nil
}

// lookupIP returns the client address when it is routable. Private and
// loopback clients get an empty address so the locator falls back to the
// service's own public address.
func lookupIP(c *gin.Context) string {
	ip := net.ParseIP(c.ClientIP())
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
		return ""
	}
	return ip.String()
}

func toWeatherResponse(s *weather.Snapshot) WeatherResponse {
	return WeatherResponse{
		Location:    s.Location,
		Temperature: s.Temperature,
		Description: s.Description,
		Humidity:    s.Humidity,
		WindSpeed:   s.WindSpeed,
		Icon:        s.Icon,
		Timezone:    s.TimezoneOffset,
		Sunrise:     s.Sunrise.Unix(),
		Sunset:      s.Sunset.Unix(),
	}
}

func toSceneResponse(scene *weather.Scene) SceneResponse {
	response := resolutionResponse(scene)
	w := toWeatherResponse(&scene.Snapshot)
	temp := scene.Snapshot.RoundedTemperature()
	response.Weather = &w
	response.Location = scene.Location
	response.DisplayTemperature = &temp
	return response
}

func resolutionResponse(scene *weather.Scene) SceneResponse {
	r := scene.Resolution
	return SceneResponse{
		Period:        r.Period,
		Progress:      r.Progress,
		Condition:     r.Condition,
		Night:         r.Night,
		Icon:          r.Icon,
		Theme:         r.Theme,
		SkyClasses:    r.Theme.Sky.Classes(),
		GroundClasses: r.Theme.Ground.Classes(),
		Decorations:   scene.Decorations,
		LocalTime:     scene.Snapshot.LocalTime(scene.ResolvedAt).Format(time.Kitchen),
		ResolvedAt:    scene.ResolvedAt.Unix(),
	}
}
