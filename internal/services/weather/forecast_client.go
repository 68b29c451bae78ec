package weather

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
)

// TimeLayout is the local timestamp format of the hourly series.
const TimeLayout = "2006-01-02T15:04"

const hourlyFields = "temperature_2m,relativehumidity_2m,weathercode,windspeed_10m"

type forecastResponse struct {
	Hourly *struct {
		Time             []string  `json:"time"`
		Temperature2m    []float64 `json:"temperature_2m"`
		RelativeHumidity []uint    `json:"relativehumidity_2m"`
		WeatherCode      []uint    `json:"weathercode"`
		Windspeed10m     []float64 `json:"windspeed_10m"`
	} `json:"hourly"`
}

// ForecastClient fetches hourly series from the Open-Meteo forecast API.
type ForecastClient struct {
	apiURL   string
	timezone string
	location *time.Location
	fetcher  fetcher
	logger   zerolog.Logger
}

// NewForecastClient builds a client whose series are expressed in timezone,
// an IANA zone name such as "America/Los_Angeles".
func NewForecastClient(apiURL, timezone string, f fetcher, logger zerolog.Logger) (*ForecastClient, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load forecast timezone %q: %w", timezone, err)
	}
	return &ForecastClient{
		apiURL:   apiURL,
		timezone: timezone,
		location: loc,
		fetcher:  f,
		logger:   logger,
	}, nil
}

// Location is the timezone the series timestamps are interpreted in.
func (c *ForecastClient) Location() *time.Location {
	return c.location
}

func (c *ForecastClient) forecastURL(lat, lon float64) string {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("hourly", hourlyFields)
	q.Set("timezone", c.timezone)
	return c.apiURL + "?" + q.Encode()
}

// FetchHourly returns temperature, humidity, weather code and windspeed per
// hour for the given coordinates.
func (c *ForecastClient) FetchHourly(ctx context.Context, lat, lon float64) (models.HourlySeries, error) {
	start := time.Now()
	u := c.forecastURL(lat, lon)

	c.logger.Debug().
		Ctx(ctx).
		Float64("latitude", lat).
		Float64("longitude", lon).
		Str("url", u).
		Msg("starting forecast request")

	body, _, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return models.HourlySeries{}, fmt.Errorf("fetch forecast: %w", err)
	}

	var raw forecastResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Error().
			Ctx(ctx).
			Err(err).
			Msg("failed to decode forecast response")
		return models.HourlySeries{}, &models.ParseError{Source: "forecast", Err: err}
	}

	series, err := c.toSeries(raw)
	if err != nil {
		c.logger.Error().
			Ctx(ctx).
			Err(err).
			Msg("invalid forecast payload")
		return models.HourlySeries{}, &models.ParseError{Source: "forecast", Err: err}
	}

	c.logger.Info().
		Ctx(ctx).
		Int("hours", series.Len()).
		Dur("duration_ms", time.Since(start)).
		Msg("fetched hourly forecast")

	return series, nil
}

func (c *ForecastClient) toSeries(raw forecastResponse) (models.HourlySeries, error) {
	h := raw.Hourly
	if h == nil {
		return models.HourlySeries{}, errors.New("missing hourly object")
	}
	if h.Time == nil || h.Temperature2m == nil || h.RelativeHumidity == nil ||
		h.WeatherCode == nil || h.Windspeed10m == nil {
		return models.HourlySeries{}, errors.New("missing hourly series")
	}

	n := len(h.Time)
	if len(h.Temperature2m) != n || len(h.RelativeHumidity) != n ||
		len(h.WeatherCode) != n || len(h.Windspeed10m) != n {
		return models.HourlySeries{}, fmt.Errorf(
			"series length mismatch: time=%d temperature=%d humidity=%d weathercode=%d windspeed=%d",
			n, len(h.Temperature2m), len(h.RelativeHumidity), len(h.WeatherCode), len(h.Windspeed10m))
	}

	times := make([]time.Time, n)
	for i, s := range h.Time {
		ts, err := time.ParseInLocation(TimeLayout, s, c.location)
		if err != nil {
			return models.HourlySeries{}, fmt.Errorf("time[%d]: %w", i, err)
		}
		times[i] = ts
	}

	return models.HourlySeries{
		Time:        times,
		Temperature: h.Temperature2m,
		Humidity:    h.RelativeHumidity,
		Windspeed:   h.Windspeed10m,
		WeatherCode: h.WeatherCode,
	}, nil
}
