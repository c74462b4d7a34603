package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"skycast.app/internal/ports"
	"skycast.app/pkg/errors"
)

const defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
	// Client overrides the default HTTP client
	Client HTTPClient
}

// OpenWeatherMapResponse represents the response from OpenWeatherMap API
type OpenWeatherMapResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Timezone int   `json:"timezone"`
	Dt       int64 `json:"dt"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) ports.WeatherProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(params.Timeout)}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// GetCurrentWeather retrieves weather data for a city from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	query := url.Values{}
	query.Set("q", city)

	apiResp, err := p.fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	return p.toWeatherData(apiResp, city)
}

// GetWeatherByCoordinates retrieves weather data for a coordinate pair from OpenWeatherMap
func (p *OpenWeatherMapProviderAdapter) GetWeatherByCoordinates(ctx context.Context, coords ports.Coordinates) (*ports.WeatherData, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))

	apiResp, err := p.fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	// Open sea and other unnamed places come back without a name
	fallback := fmt.Sprintf("%.2f, %.2f", coords.Latitude, coords.Longitude)
	return p.toWeatherData(apiResp, fallback)
}

func (p *OpenWeatherMapProviderAdapter) fetch(ctx context.Context, query url.Values) (*OpenWeatherMapResponse, error) {
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")
	endpoint := p.baseURL + "/weather?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NewNotFoundError("City not found")
	case resp.StatusCode != http.StatusOK:
		return nil, errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	var apiResp OpenWeatherMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode OpenWeatherMap response", err)
	}
	return &apiResp, nil
}

func (p *OpenWeatherMapProviderAdapter) toWeatherData(apiResp *OpenWeatherMapResponse, fallbackLocation string) (*ports.WeatherData, error) {
	if len(apiResp.Weather) == 0 {
		return nil, errors.NewExternalAPIError("OpenWeatherMap response has no weather conditions", nil)
	}

	location := apiResp.Name
	if location == "" {
		location = fallbackLocation
	}

	timestamp := time.Now().UTC()
	if apiResp.Dt > 0 {
		timestamp = time.Unix(apiResp.Dt, 0).UTC()
	}

	return &ports.WeatherData{
		Location:       location,
		Temperature:    apiResp.Main.Temp,
		Description:    apiResp.Weather[0].Description,
		Humidity:       apiResp.Main.Humidity,
		WindSpeed:      apiResp.Wind.Speed,
		Icon:           apiResp.Weather[0].Icon,
		TimezoneOffset: apiResp.Timezone,
		Sunrise:        time.Unix(apiResp.Sys.Sunrise, 0).UTC(),
		Sunset:         time.Unix(apiResp.Sys.Sunset, 0).UTC(),
		Timestamp:      timestamp,
	}, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}
