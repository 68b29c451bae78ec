package weather_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
	"github.com/Nazarious-ucu/weather-cli/internal/services/weather"
)

func laLocation(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation(laTimezone)
	require.NoError(t, err)
	return loc
}

func seriesAt(loc *time.Location, start time.Time, hours int) models.HourlySeries {
	s := models.HourlySeries{}
	for i := range hours {
		s.Time = append(s.Time, start.Add(time.Duration(i)*time.Hour).In(loc))
		s.Temperature = append(s.Temperature, 10+float64(i))
		s.Humidity = append(s.Humidity, uint(50+i))
		s.Windspeed = append(s.Windspeed, 1.5*float64(i))
		s.WeatherCode = append(s.WeatherCode, uint(i))
	}
	return s
}

func TestParseStrategy(t *testing.T) {
	s, err := weather.ParseStrategy("exact")
	require.NoError(t, err)
	assert.Equal(t, weather.StrategyExact, s)

	s, err = weather.ParseStrategy("nearest-hour")
	require.NoError(t, err)
	assert.Equal(t, weather.StrategyNearestHour, s)

	_, err = weather.ParseStrategy("closest")
	assert.Error(t, err)
}

func TestSelector_Exact(t *testing.T) {
	loc := laLocation(t)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, loc)
	series := seriesAt(loc, start, 4)
	sel := weather.NewSelector(loc, weather.StrategyExact)

	t.Run("MatchOnTheHour", func(t *testing.T) {
		i, ok := sel.IndexOf(series, time.Date(2024, 5, 1, 2, 0, 40, 0, loc))
		assert.True(t, ok)
		assert.Equal(t, 2, i)
	})

	t.Run("NowInAnotherZone", func(t *testing.T) {
		// 09:00 UTC is 02:00 in Los Angeles during daylight saving time.
		i, ok := sel.IndexOf(series, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
		assert.True(t, ok)
		assert.Equal(t, 2, i)
	})

	t.Run("MidHourFallsBackToFirst", func(t *testing.T) {
		i, ok := sel.IndexOf(series, time.Date(2024, 5, 1, 2, 30, 0, 0, loc))
		assert.False(t, ok)
		assert.Equal(t, 0, i)

		snap := sel.SelectCurrent(series, time.Date(2024, 5, 1, 2, 30, 0, 0, loc))
		assert.Equal(t, weather.SnapshotAt(series, 0), snap)
	})

	t.Run("OutsideSeriesFallsBackToFirst", func(t *testing.T) {
		i, ok := sel.IndexOf(series, time.Date(2030, 1, 1, 0, 0, 0, 0, loc))
		assert.False(t, ok)
		assert.Equal(t, 0, i)
	})
}

func TestSelector_NearestHour(t *testing.T) {
	loc := laLocation(t)
	series := seriesAt(loc, time.Date(2024, 5, 1, 0, 0, 0, 0, loc), 4)
	sel := weather.NewSelector(loc, weather.StrategyNearestHour)

	i, ok := sel.IndexOf(series, time.Date(2024, 5, 1, 3, 59, 0, 0, loc))
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	snap := sel.SelectCurrent(series, time.Date(2024, 5, 1, 1, 15, 0, 0, loc))
	assert.Equal(t, models.WeatherSnapshot{
		Temperature: 11,
		Condition:   models.ConditionCloudy,
		Humidity:    51,
		Windspeed:   1.5,
	}, snap)
}

func TestSelector_EmptySeries(t *testing.T) {
	sel := weather.NewSelector(nil, weather.StrategyExact)

	snap := sel.SelectCurrent(models.HourlySeries{}, time.Now())

	assert.Equal(t, models.ConditionUnknown, snap.Condition)
}
