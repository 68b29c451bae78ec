package weather

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
)

var errEmptySeries = errors.New("empty hourly series")

type locationResolver interface {
	Resolve(ctx context.Context, name string) ([]models.LocationCandidate, error)
}

type hourlyFetcher interface {
	FetchHourly(ctx context.Context, lat, lon float64) (models.HourlySeries, error)
}

// Service chains geocoding and forecast lookups for one location name.
type Service struct {
	logger   zerolog.Logger
	geocoder locationResolver
	forecast hourlyFetcher
	selector *Selector
	now      func() time.Time
}

func NewService(
	logger zerolog.Logger,
	geocoder locationResolver,
	forecast hourlyFetcher,
	selector *Selector,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		logger:   logger,
		geocoder: geocoder,
		forecast: forecast,
		selector: selector,
		now:      now,
	}
}

func (s *Service) lookup(
	ctx context.Context,
	name string,
) (models.LocationCandidate, models.HourlySeries, zerolog.Logger, error) {
	logger := s.logger.With().
		Str("lookup_id", uuid.NewString()).
		Str("location", name).
		Logger()

	candidates, err := s.geocoder.Resolve(ctx, name)
	if err != nil {
		logger.Warn().
			Ctx(ctx).
			Err(err).
			Msg("resolve failed")
		return models.LocationCandidate{}, models.HourlySeries{}, logger, err
	}
	loc := candidates[0]

	series, err := s.forecast.FetchHourly(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		logger.Error().
			Ctx(ctx).
			Str("matched", loc.Name).
			Err(err).
			Msg("forecast failed")
		return models.LocationCandidate{}, models.HourlySeries{}, logger, err
	}

	logger.Debug().
		Ctx(ctx).
		Str("matched", loc.Name).
		Float64("latitude", loc.Latitude).
		Float64("longitude", loc.Longitude).
		Int("hours", series.Len()).
		Msg("lookup finished")

	return loc, series, logger, nil
}

// CurrentWeather returns the snapshot for the hour matching the current time
// at the best match for name.
func (s *Service) CurrentWeather(ctx context.Context, name string) (models.CurrentReport, error) {
	loc, series, logger, err := s.lookup(ctx, name)
	if err != nil {
		return models.CurrentReport{}, err
	}
	if series.Len() == 0 {
		return models.CurrentReport{}, &models.ParseError{Source: "forecast", Err: errEmptySeries}
	}

	now := s.now()
	idx, matched := s.selector.IndexOf(series, now)
	if !matched {
		logger.Warn().
			Ctx(ctx).
			Time("now", now).
			Msg("current hour not in series, using first hour")
	}

	return models.CurrentReport{
		Location: loc,
		Snapshot: SnapshotAt(series, idx),
	}, nil
}

// HourlyWeather returns the full hourly series at the best match for name.
func (s *Service) HourlyWeather(ctx context.Context, name string) (models.HourlyReport, error) {
	loc, series, _, err := s.lookup(ctx, name)
	if err != nil {
		return models.HourlyReport{}, err
	}
	return models.HourlyReport{Location: loc, Series: series}, nil
}
