package weather

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
)

const (
	geocodingCount    = "10"
	geocodingLanguage = "en"
	geocodingFormat   = "json"
)

type fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, int, error)
}

type geocodingResponse struct {
	Results []struct {
		Name      string   `json:"name"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
		Country   string   `json:"country"`
		Admin1    string   `json:"admin1"`
		Timezone  string   `json:"timezone"`
	} `json:"results"`
}

// Geocoder resolves free-text place names through the Open-Meteo geocoding API.
type Geocoder struct {
	apiURL  string
	fetcher fetcher
	logger  zerolog.Logger
}

func NewGeocoder(apiURL string, f fetcher, logger zerolog.Logger) *Geocoder {
	return &Geocoder{apiURL: apiURL, fetcher: f, logger: logger}
}

// SearchURL builds the request URL for a location name. Spaces are encoded as
// '+', so the result never holds a raw space.
func (g *Geocoder) SearchURL(name string) string {
	q := url.Values{}
	q.Set("name", strings.TrimSpace(name))
	q.Set("count", geocodingCount)
	q.Set("language", geocodingLanguage)
	q.Set("format", geocodingFormat)
	return g.apiURL + "?" + q.Encode()
}

// Resolve returns up to ten matches for name. The first one is the best match.
func (g *Geocoder) Resolve(ctx context.Context, name string) ([]models.LocationCandidate, error) {
	start := time.Now()
	u := g.SearchURL(name)

	g.logger.Debug().
		Ctx(ctx).
		Str("location", name).
		Str("url", u).
		Msg("starting geocoding request")

	body, _, err := g.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", name, err)
	}

	var raw geocodingResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		g.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("location", name).
			Msg("failed to decode geocoding response")
		return nil, &models.ParseError{Source: "geocoding", Err: err}
	}

	if len(raw.Results) == 0 {
		g.logger.Info().
			Ctx(ctx).
			Str("location", name).
			Msg("no geocoding matches")
		return nil, models.ErrLocationNotFound
	}

	candidates := make([]models.LocationCandidate, 0, len(raw.Results))
	for i, r := range raw.Results {
		if r.Latitude == nil || r.Longitude == nil {
			return nil, &models.ParseError{
				Source: "geocoding",
				Err:    fmt.Errorf("result %d has no coordinates", i),
			}
		}
		candidates = append(candidates, models.LocationCandidate{
			Name:      r.Name,
			Latitude:  *r.Latitude,
			Longitude: *r.Longitude,
			Country:   r.Country,
			Admin1:    r.Admin1,
			Timezone:  r.Timezone,
		})
	}

	g.logger.Info().
		Ctx(ctx).
		Str("location", name).
		Int("matches", len(candidates)).
		Dur("duration_ms", time.Since(start)).
		Msg("resolved location")

	return candidates, nil
}
