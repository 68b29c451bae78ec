package decorators

import (
	"context"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
)

type weatherService interface {
	CurrentWeather(ctx context.Context, name string) (models.CurrentReport, error)
	HourlyWeather(ctx context.Context, name string) (models.HourlyReport, error)
}

type lookupObserver interface {
	ObserveLookup(operation string, err error)
}

// MetricsService counts lookups by outcome.
type MetricsService struct {
	inner    weatherService
	observer lookupObserver
}

func NewMetricsService(inner weatherService, observer lookupObserver) *MetricsService {
	return &MetricsService{inner: inner, observer: observer}
}

func (s *MetricsService) CurrentWeather(ctx context.Context, name string) (models.CurrentReport, error) {
	r, err := s.inner.CurrentWeather(ctx, name)
	s.observer.ObserveLookup("current", err)
	return r, err
}

func (s *MetricsService) HourlyWeather(ctx context.Context, name string) (models.HourlyReport, error) {
	r, err := s.inner.HourlyWeather(ctx, name)
	s.observer.ObserveLookup("hourly", err)
	return r, err
}
