package ports

import "context"

// LocationData represents a location resolved from an IP address
type LocationData struct {
	City      string
	Region    string
	Country   string
	Latitude  float64
	Longitude float64
}

// IPLocator resolves the approximate location of an IP address. An empty ip
// means the caller's own public address as seen by the service.
type IPLocator interface {
	DetectLocation(ctx context.Context, ip string) (*LocationData, error)
	GetProviderName() string
}
