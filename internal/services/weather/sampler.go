package weather

import (
	"iter"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
)

// Sample yields the hours at indices 0, skip, 2*skip, ... of series. The
// sequence is computed on every range, so it can be iterated more than once.
func Sample(series models.HourlySeries, skip int) (iter.Seq[models.HourlyPoint], error) {
	if skip <= 0 {
		return nil, models.ErrInvalidStride
	}

	return func(yield func(models.HourlyPoint) bool) {
		for i := 0; i < series.Len(); i += skip {
			p := models.HourlyPoint{
				Time:            series.Time[i],
				WeatherSnapshot: SnapshotAt(series, i),
			}
			if !yield(p) {
				return
			}
		}
	}, nil
}
