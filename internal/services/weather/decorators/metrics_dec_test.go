package decorators_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
	"github.com/Nazarious-ucu/weather-cli/internal/services/weather/decorators"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CurrentWeather(ctx context.Context, name string) (models.CurrentReport, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(models.CurrentReport)
	return r, args.Error(1)
}

func (m *mockService) HourlyWeather(ctx context.Context, name string) (models.HourlyReport, error) {
	args := m.Called(ctx, name)
	r, _ := args.Get(0).(models.HourlyReport)
	return r, args.Error(1)
}

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) ObserveLookup(operation string, err error) {
	m.Called(operation, err)
}

func TestMetricsService(t *testing.T) {
	ctx := context.Background()
	svc, obs := &mockService{}, &mockObserver{}
	report := models.CurrentReport{Location: models.LocationCandidate{Name: "Seattle"}}

	svc.On("CurrentWeather", mock.Anything, "Seattle").Return(report, nil).Once()
	svc.On("HourlyWeather", mock.Anything, "Qwxzv").Return(nil, models.ErrLocationNotFound).Once()
	obs.On("ObserveLookup", "current", nil).Once()
	obs.On("ObserveLookup", "hourly", models.ErrLocationNotFound).Once()
	t.Cleanup(func() {
		svc.AssertExpectations(t)
		obs.AssertExpectations(t)
	})

	d := decorators.NewMetricsService(svc, obs)

	got, err := d.CurrentWeather(ctx, "Seattle")
	assert.NoError(t, err)
	assert.Equal(t, report, got)

	_, err = d.HourlyWeather(ctx, "Qwxzv")
	assert.ErrorIs(t, err, models.ErrLocationNotFound)
}
