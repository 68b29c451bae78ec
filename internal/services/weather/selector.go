package weather

import (
	"fmt"
	"time"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
)

// SelectStrategy decides which series entry counts as "now".
type SelectStrategy string

const (
	// StrategyExact matches the entry equal to now at minute precision and
	// falls back to the first hour otherwise.
	StrategyExact SelectStrategy = "exact"
	// StrategyNearestHour matches the entry of the hour containing now and
	// falls back to the first hour otherwise.
	StrategyNearestHour SelectStrategy = "nearest-hour"
)

func ParseStrategy(s string) (SelectStrategy, error) {
	switch SelectStrategy(s) {
	case StrategyExact, StrategyNearestHour:
		return SelectStrategy(s), nil
	default:
		return "", fmt.Errorf("unknown select strategy %q", s)
	}
}

// Selector picks the current hour out of an hourly series.
type Selector struct {
	location *time.Location
	strategy SelectStrategy
}

// NewSelector returns a selector comparing timestamps in loc, the timezone the
// series was requested in.
func NewSelector(loc *time.Location, strategy SelectStrategy) *Selector {
	if loc == nil {
		loc = time.Local
	}
	return &Selector{location: loc, strategy: strategy}
}

func (s *Selector) target(now time.Time) time.Time {
	n := now.In(s.location)
	if s.strategy == StrategyNearestHour {
		return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), 0, 0, 0, s.location)
	}
	return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), 0, 0, s.location)
}

// IndexOf scans the series for now. When nothing matches it returns 0 and
// false: the first hour of the series is used, which may be stale.
func (s *Selector) IndexOf(series models.HourlySeries, now time.Time) (int, bool) {
	want := s.target(now)
	for i, ts := range series.Time {
		if ts.Equal(want) {
			return i, true
		}
	}
	return 0, false
}

// SelectCurrent returns the snapshot at IndexOf(series, now). The series must
// not be empty.
func (s *Selector) SelectCurrent(series models.HourlySeries, now time.Time) models.WeatherSnapshot {
	if series.Len() == 0 {
		return models.WeatherSnapshot{Condition: models.ConditionUnknown}
	}
	i, _ := s.IndexOf(series, now)
	return SnapshotAt(series, i)
}

// SnapshotAt assembles the snapshot of hour i.
func SnapshotAt(series models.HourlySeries, i int) models.WeatherSnapshot {
	return models.WeatherSnapshot{
		Temperature: series.Temperature[i],
		Condition:   Translate(series.WeatherCode[i]),
		Humidity:    series.Humidity[i],
		Windspeed:   series.Windspeed[i],
	}
}
