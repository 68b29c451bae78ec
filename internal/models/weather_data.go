package models

import "time"

// Condition is a coarse sky/precipitation label derived from a WMO weather code.
type Condition string

const (
	ConditionClear   Condition = "Clear"
	ConditionCloudy  Condition = "Cloudy"
	ConditionRain    Condition = "Rain"
	ConditionSnow    Condition = "Snow"
	ConditionUnknown Condition = "Unknown"
)

// LocationCandidate is one geocoding match. Only Name, Latitude and Longitude
// take part in lookups; the rest is shown to the user.
type LocationCandidate struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country,omitempty"`
	Admin1    string  `json:"admin1,omitempty"`
	Timezone  string  `json:"timezone,omitempty"`
}

// HourlySeries holds parallel per-hour measurements. All slices have the same
// length and index i of every slice describes the same hour.
type HourlySeries struct {
	Time        []time.Time `json:"time"`
	Temperature []float64   `json:"temperature"`
	Humidity    []uint      `json:"humidity"`
	Windspeed   []float64   `json:"windspeed"`
	WeatherCode []uint      `json:"weatherCode"`
}

// Len returns the number of hours in the series.
func (s HourlySeries) Len() int {
	return len(s.Time)
}

// WeatherSnapshot is a single hour extracted from an HourlySeries.
type WeatherSnapshot struct {
	Temperature float64   `json:"temperature"`
	Condition   Condition `json:"condition"`
	Humidity    uint      `json:"humidity"`
	Windspeed   float64   `json:"windspeed"`
}

// HourlyPoint is a snapshot together with the hour it describes.
type HourlyPoint struct {
	Time time.Time `json:"time"`
	WeatherSnapshot
}

// CurrentReport is the result of a current-weather lookup.
type CurrentReport struct {
	Location LocationCandidate `json:"location"`
	Snapshot WeatherSnapshot   `json:"snapshot"`
}

// HourlyReport is the result of an hourly-weather lookup.
type HourlyReport struct {
	Location LocationCandidate `json:"location"`
	Series   HourlySeries      `json:"series"`
}
