package decorators

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
)

type hourlyFetcher interface {
	FetchHourly(ctx context.Context, lat, lon float64) (models.HourlySeries, error)
}

type cacheClient[T any] interface {
	Set(ctx context.Context, key string, value T) error
	Get(ctx context.Context, key string) (T, error)
}

// CachedForecast serves hourly series from cache before asking the forecast
// API. Only forecasts are cached; geocoding always goes upstream.
type CachedForecast struct {
	inner  hourlyFetcher
	cache  cacheClient[models.HourlySeries]
	logger zerolog.Logger
}

func NewCachedForecast(
	inner hourlyFetcher,
	cache cacheClient[models.HourlySeries],
	logger zerolog.Logger,
) *CachedForecast {
	return &CachedForecast{inner: inner, cache: cache, logger: logger}
}

// Key is the cache key of a coordinate pair, rounded to four decimals.
func Key(lat, lon float64) string {
	return fmt.Sprintf("forecast:%.4f:%.4f", lat, lon)
}

func (s *CachedForecast) FetchHourly(ctx context.Context, lat, lon float64) (models.HourlySeries, error) {
	key := Key(lat, lon)

	series, err := s.cache.Get(ctx, key)
	if err == nil && series.Len() > 0 {
		s.logger.Debug().
			Ctx(ctx).
			Str("key", key).
			Msg("cache hit")
		return series, nil
	}
	s.logger.Debug().
		Ctx(ctx).
		Str("key", key).
		AnErr("reason", err).
		Msg("cache miss")

	series, err = s.inner.FetchHourly(ctx, lat, lon)
	if err != nil {
		return models.HourlySeries{}, err
	}

	if err := s.cache.Set(ctx, key, series); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Str("key", key).
			Err(err).
			Msg("cache set failed")
	}

	return series, nil
}
