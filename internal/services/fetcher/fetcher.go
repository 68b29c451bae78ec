package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues single-attempt GET requests and hands back the raw body.
type Client struct {
	client HTTPClient
	logger zerolog.Logger
}

// NewClient constructs a fetcher over the given HTTP client. The client is
// expected to carry a finite timeout.
func NewClient(httpClient HTTPClient, logger zerolog.Logger) *Client {
	return &Client{client: httpClient, logger: logger}
}

// Fetch performs one GET. On a non-2xx status the body and status are returned
// together with a *models.NetworkError.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, int, error) {
	start := time.Now()

	c.logger.Debug().
		Ctx(ctx).
		Str("url", url).
		Msg("starting request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("url", url).
			Msg("failed to create HTTP request")
		return nil, 0, &models.NetworkError{URL: url, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("url", url).
			Msg("error sending HTTP request")
		return nil, 0, &models.NetworkError{URL: url, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error().
				Ctx(ctx).
				Err(cerr).
				Str("url", url).
				Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("url", url).
			Msg("failed to read response body")
		return nil, resp.StatusCode, &models.NetworkError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error().
			Ctx(ctx).
			Str("url", url).
			Int("status_code", resp.StatusCode).
			Msg("API returned non-2xx status")
		return body, resp.StatusCode, &models.NetworkError{URL: url, StatusCode: resp.StatusCode}
	}

	c.logger.Debug().
		Ctx(ctx).
		Str("url", url).
		Int("status_code", resp.StatusCode).
		Dur("duration_ms", time.Since(start)).
		Msg("request completed")

	return body, resp.StatusCode, nil
}
