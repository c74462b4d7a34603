package external

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"skycast.app/internal/ports"
	"skycast.app/pkg/errors"
)

const (
	defaultIPAPIBaseURL = "http://ip-api.com"
	ipAPIFields         = "status,message,country,regionName,city,lat,lon"
)

// IPAPILocatorAdapter implements IPLocator port for ip-api.com
type IPAPILocatorAdapter struct {
	client *resty.Client
	logger ports.Logger
}

// IPAPILocatorParams holds parameters for creating the ip-api locator
type IPAPILocatorParams struct {
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
}

// IPAPIResponse represents the response from ip-api.com JSON endpoint
type IPAPIResponse struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	Country    string  `json:"country"`
	RegionName string  `json:"regionName"`
	City       string  `json:"city"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}

// NewIPAPILocatorAdapter creates a new ip-api locator adapter
func NewIPAPILocatorAdapter(params IPAPILocatorParams) ports.IPLocator {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultIPAPIBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeoutOrDefault(params.Timeout)).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &IPAPILocatorAdapter{
		client: client,
		logger: params.Logger,
	}
}

// DetectLocation looks up ip. An empty ip asks ip-api for the caller's address.
func (l *IPAPILocatorAdapter) DetectLocation(ctx context.Context, ip string) (*ports.LocationData, error) {
	var result IPAPIResponse

	resp, err := l.client.R().
		SetContext(ctx).
		SetQueryParam("fields", ipAPIFields).
		SetResult(&result).
		Get("/json/" + url.PathEscape(ip))
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call ip-api", err)
	}

	if !resp.IsSuccess() {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("ip-api returned status %d", resp.StatusCode()), nil)
	}

	if result.Status != "success" {
		l.logger.Debug("ip-api lookup rejected",
			ports.F("ip", ip),
			ports.F("status", result.Status),
			ports.F("message", result.Message))
		return nil, errors.NewExternalAPIError(fmt.Sprintf("ip-api lookup failed: %s", result.Message), nil)
	}

	return &ports.LocationData{
		City:      result.City,
		Region:    result.RegionName,
		Country:   result.Country,
		Latitude:  result.Lat,
		Longitude: result.Lon,
	}, nil
}

// GetProviderName returns the name of this locator
func (l *IPAPILocatorAdapter) GetProviderName() string {
	return "ip-api"
}
