package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
)

type fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, int, error)
}

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

type response struct {
	body   []byte
	status int
}

// BreakerFetcher stops calling the wrapped fetcher once it keeps failing.
// It never retries a call.
type BreakerFetcher struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped fetcher
}

func NewBreakerFetcher(name string, cfg BreakerConfig, wrapped fetcher) *BreakerFetcher {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
	}
	return &BreakerFetcher{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerFetcher) Fetch(ctx context.Context, url string) ([]byte, int, error) {
	var last response

	_, err := b.cb.Execute(func() (interface{}, error) {
		body, status, err := b.wrapped.Fetch(ctx, url)
		last = response{body: body, status: status}
		return nil, err
	})
	if err == nil {
		return last.body, last.status, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, 0, &models.NetworkError{URL: url, Err: fmt.Errorf("%s unavailable: %w", b.name, err)}
	}

	return last.body, last.status, err
}

// State reports the breaker state, mainly for logging.
func (b *BreakerFetcher) State() gobreaker.State {
	return b.cb.State()
}
