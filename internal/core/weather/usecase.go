package weather

import (
	"context"
	"fmt"
	"time"

	"skycast.app/internal/core/theme"
	"skycast.app/internal/ports"
	"skycast.app/pkg/errors"
)

const (
	msgFetchFailed     = "Failed to fetch weather data"
	msgDetectFailed    = "Failed to detect location from IP"
	msgInvalidLocation = "Invalid location data"
)

type UseCase struct {
	provider ports.WeatherProvider
	locator  ports.IPLocator
	logger   ports.Logger
	metrics  ports.MetricsCollector
	clock    func() time.Time
}

type UseCaseDependencies struct {
	Provider ports.WeatherProvider
	Locator  ports.IPLocator
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
	// Clock defaults to the UTC wall clock
	Clock func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Locator == nil {
		return nil, errors.NewValidationError("locator is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}

	return &UseCase{
		provider: deps.Provider,
		locator:  deps.Locator,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		clock:    clock,
	}, nil
}

func (uc *UseCase) GetByCity(ctx context.Context, request CityRequest) (*Snapshot, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("City parameter is required")
	}

	request.NormalizeCity()
	city := request.City
	uc.logger.Debug("Getting weather for city", ports.F("city", city))

	start := time.Now()
	data, err := uc.provider.GetCurrentWeather(ctx, city)
	uc.observe("by_city", start, err)
	if err != nil {
		uc.logger.Error("Failed to get weather",
			ports.F("city", city),
			ports.F("error", err))
		return nil, fmt.Errorf("get weather for city %s: %w", city, providerError(err))
	}

	snapshot, err := uc.toSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("get weather for city %s: %w", city, err)
	}

	uc.logger.Debug("Weather retrieved successfully",
		ports.F("city", city),
		ports.F("temperature", snapshot.Temperature))
	return snapshot, nil
}

func (uc *UseCase) GetByCoordinates(ctx context.Context, request CoordinatesRequest) (*Snapshot, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	uc.logger.Debug("Getting weather for coordinates",
		ports.F("lat", request.Latitude),
		ports.F("lon", request.Longitude))

	start := time.Now()
	data, err := uc.provider.GetWeatherByCoordinates(ctx, ports.Coordinates{
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
	})
	uc.observe("by_coordinates", start, err)
	if err != nil {
		uc.logger.Error("Failed to get weather by coordinates",
			ports.F("lat", request.Latitude),
			ports.F("lon", request.Longitude),
			ports.F("error", err))
		return nil, fmt.Errorf("get weather for %.4f,%.4f: %w", request.Latitude, request.Longitude, providerError(err))
	}

	snapshot, err := uc.toSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("get weather for %.4f,%.4f: %w", request.Latitude, request.Longitude, err)
	}
	return snapshot, nil
}

// DetectLocation resolves the approximate location of ip. An empty ip
// resolves the service's own public address.
func (uc *UseCase) DetectLocation(ctx context.Context, ip string) (*Location, error) {
	start := time.Now()
	data, err := uc.locator.DetectLocation(ctx, ip)
	outcome := ports.OutcomeSuccess
	if err != nil {
		outcome = ports.OutcomeError
	}
	uc.metrics.RecordUpstreamCall(uc.locator.GetProviderName(), "detect_location", outcome, time.Since(start))
	if err != nil {
		uc.logger.Warn("IP geolocation failed", ports.F("ip", ip), ports.F("error", err))
		return nil, errors.NewExternalAPIError(msgDetectFailed, err)
	}

	return &Location{
		City:      data.City,
		Region:    data.Region,
		Country:   data.Country,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
	}, nil
}

// GetScene looks up the weather for the requested location and resolves it
// against the current clock. City wins over coordinates; with neither the
// location is detected from the client IP first.
func (uc *UseCase) GetScene(ctx context.Context, request SceneRequest) (*Scene, error) {
	var (
		snapshot *Snapshot
		location *Location
		err      error
	)

	switch {
	case request.City != "":
		snapshot, err = uc.GetByCity(ctx, CityRequest{City: request.City})
	case request.Coordinates != nil:
		snapshot, err = uc.GetByCoordinates(ctx, *request.Coordinates)
	default:
		location, err = uc.DetectLocation(ctx, request.ClientIP)
		if err != nil {
			return nil, err
		}
		if location.Latitude == 0 || location.Longitude == 0 {
			return nil, errors.NewExternalAPIError(msgInvalidLocation, nil)
		}
		snapshot, err = uc.GetByCoordinates(ctx, CoordinatesRequest{
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		})
	}
	if err != nil {
		return nil, err
	}

	scene := uc.ResolveScene(*snapshot, uc.clock())
	scene.Location = location
	return &scene, nil
}

// ResolveScene resolves snapshot for the moment now
func (uc *UseCase) ResolveScene(snapshot Snapshot, now time.Time) Scene {
	result := theme.Resolve(theme.Input{
		Now:         now,
		Sunrise:     snapshot.Sunrise,
		Sunset:      snapshot.Sunset,
		Description: snapshot.Description,
	})
	uc.metrics.RecordScene(result.Period.String(), result.Condition.String())

	return Scene{
		Snapshot:    snapshot,
		Resolution:  result,
		Decorations: decorationsFor(&snapshot, result.Condition),
		ResolvedAt:  now,
	}
}

// Now returns the use case clock reading
func (uc *UseCase) Now() time.Time {
	return uc.clock()
}

func (uc *UseCase) GetProviderInfo(ctx context.Context) map[string]interface{} {
	return map[string]interface{}{
		"weather_provider": uc.provider.GetProviderName(),
		"locator":          uc.locator.GetProviderName(),
	}
}

func (uc *UseCase) toSnapshot(data *ports.WeatherData) (*Snapshot, error) {
	snapshot := &Snapshot{
		Location:       data.Location,
		Temperature:    data.Temperature,
		Description:    data.Description,
		Humidity:       data.Humidity,
		WindSpeed:      data.WindSpeed,
		Icon:           data.Icon,
		TimezoneOffset: data.TimezoneOffset,
		Sunrise:        data.Sunrise,
		Sunset:         data.Sunset,
	}
	if err := snapshot.IsValid(); err != nil {
		uc.logger.Warn("Provider returned invalid weather data",
			ports.F("location", data.Location),
			ports.F("error", err))
		return nil, errors.NewExternalAPIError("invalid weather data from provider", err)
	}
	return snapshot, nil
}

func (uc *UseCase) observe(operation string, start time.Time, err error) {
	outcome := ports.OutcomeSuccess
	switch {
	case errors.IsNotFoundError(err):
		outcome = ports.OutcomeNotFound
	case err != nil:
		outcome = ports.OutcomeError
	}
	uc.metrics.RecordUpstreamCall(uc.provider.GetProviderName(), operation, outcome, time.Since(start))
}

// providerError keeps not-found and validation errors from the provider and
// reports everything else as a failed upstream fetch.
func providerError(err error) error {
	if errors.IsNotFoundError(err) || errors.IsValidationError(err) {
		return err
	}
	return errors.NewExternalAPIError(msgFetchFailed, err)
}
