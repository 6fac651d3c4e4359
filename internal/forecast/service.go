package forecast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"weatherapp/internal/config"
	"weatherapp/internal/providers/openmeteo"
	"weatherapp/internal/types"
)

type ForecastProvider interface {
	// GetForecast fetches current conditions and hourly series for a point
	GetForecast(ctx context.Context, longitude, latitude float64) (*openmeteo.ForecastAPIResponse, error)
}

// Service is the read-through forecast cache behind the HTTP API.
type Service interface {
	GetByID(ctx context.Context, id string) (*ForecastDTO, error)
	GetByCoordinate(ctx context.Context, coords types.Coords) (*ForecastDTO, error)
	Add(ctx context.Context, coords types.Coords) (string, error)
	UpdateLatest(ctx context.Context, coords types.Coords) (*ForecastDTO, error)
	Delete(ctx context.Context, coords types.Coords) error
	List(ctx context.Context) ([]ForecastSummary, error)
}

type forecastService struct {
	provider ForecastProvider
	store    Store
	logger   *slog.Logger
}

// NewForecastService creates a service backed by the Open-Meteo API.
func NewForecastService(cfg *config.Config, store Store, logger *slog.Logger) Service {
	return NewForecastServiceWithProvider(openmeteo.NewForecastClientFromConfig(cfg.OpenMeteo, logger), store, logger)
}

// NewForecastServiceWithProvider creates a service with a custom provider.
// This is useful for testing with mock providers
func NewForecastServiceWithProvider(provider ForecastProvider, store Store, logger *slog.Logger) Service {
	return &forecastService{
		provider: provider,
		store:    store,
		logger:   logger.With("component", "forecast-service"),
	}
}

func (s *forecastService) GetByID(ctx context.Context, id string) (*ForecastDTO, error) {
	if _, err := parseID(id); err != nil {
		return nil, err
	}

	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return MapToDTO(f), nil
}

func (s *forecastService) GetByCoordinate(ctx context.Context, coords types.Coords) (*ForecastDTO, error) {
	if err := types.ValidateCoords(coords); err != nil {
		return nil, err
	}
	point := coords.Point()

	existing, err := s.store.GetByPoint(ctx, point)
	if err == nil {
		s.logger.Debug("forecast served from store", "longitude", point.Lon(), "latitude", point.Lat())
		return MapToDTO(existing), nil
	}
	if !errors.Is(err, ErrNotFound) {
		s.logger.Error("failed to look up forecast",
			"longitude", point.Lon(),
			"latitude", point.Lat(),
			"error", err,
		)
		return nil, err
	}

	fresh, err := s.fetch(ctx, coords)
	if err != nil {
		return nil, err
	}

	if err := s.store.Insert(ctx, fresh); err != nil {
		return nil, fmt.Errorf("failed to store forecast: %w", err)
	}

	return MapToDTO(fresh), nil
}

func (s *forecastService) Add(ctx context.Context, coords types.Coords) (string, error) {
	if err := types.ValidateCoords(coords); err != nil {
		return "", err
	}

	fresh, err := s.fetch(ctx, coords)
	if err != nil {
		return "", err
	}

	if err := s.store.Insert(ctx, fresh); err != nil {
		return "", fmt.Errorf("failed to store forecast: %w", err)
	}

	s.logger.Info("forecast added",
		"id", fresh.ID.Hex(),
		"longitude", fresh.Point().Lon(),
		"latitude", fresh.Point().Lat(),
	)

	return fresh.ID.Hex(), nil
}

// UpdateLatest refreshes a tracked point. Untracked points are not fetched.
// The lookup and replace are not atomic; a concurrent delete yields ErrUpdateFailed.
func (s *forecastService) UpdateLatest(ctx context.Context, coords types.Coords) (*ForecastDTO, error) {
	if err := types.ValidateCoords(coords); err != nil {
		return nil, err
	}
	point := coords.Point()

	existing, err := s.store.GetByPoint(ctx, point)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("failed to look up forecast",
				"longitude", point.Lon(),
				"latitude", point.Lat(),
				"error", err,
			)
		}
		return nil, err
	}

	fresh, err := s.fetch(ctx, coords)
	if err != nil {
		return nil, err
	}
	fresh.ID = existing.ID

	updated, err := s.store.ReplaceByPoint(ctx, fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to replace forecast: %w", err)
	}
	if !updated {
		s.logger.Warn("forecast changed before replace",
			"id", existing.ID.Hex(),
			"longitude", point.Lon(),
			"latitude", point.Lat(),
		)
		return nil, ErrUpdateFailed
	}

	return MapToDTO(fresh), nil
}

func (s *forecastService) Delete(ctx context.Context, coords types.Coords) error {
	if err := types.ValidateCoords(coords); err != nil {
		return err
	}
	point := coords.Point()

	deleted, err := s.store.DeleteByPoint(ctx, point)
	if err != nil {
		return fmt.Errorf("failed to delete forecast: %w", err)
	}
	if !deleted {
		s.logger.Warn("document not found", "longitude", point.Lon(), "latitude", point.Lat())
		return ErrNotFound
	}

	return nil
}

func (s *forecastService) List(ctx context.Context) ([]ForecastSummary, error) {
	forecasts, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("failed to list forecasts", "error", err)
		return nil, err
	}

	summaries := make([]ForecastSummary, 0, len(forecasts))
	for i := range forecasts {
		summaries = append(summaries, MapToSummary(&forecasts[i]))
	}

	return summaries, nil
}

// fetch asks the provider for a fresh forecast. Any provider failure is
// reported as ErrUpstreamUnavailable.
func (s *forecastService) fetch(ctx context.Context, coords types.Coords) (*Forecast, error) {
	point := coords.Point()

	resp, err := s.provider.GetForecast(ctx, point.Lon(), point.Lat())
	if err != nil {
		s.logger.Debug("failed to get forecast from provider",
			"longitude", point.Lon(),
			"latitude", point.Lat(),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	f, err := MapAPIResponseToForecast(resp)
	if err != nil {
		s.logger.Debug("provider returned an unusable forecast", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	return f, nil
}
