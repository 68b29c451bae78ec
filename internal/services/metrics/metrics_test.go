package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
	"github.com/Nazarious-ucu/weather-cli/internal/services/metrics"
)

func TestObserveLookup(t *testing.T) {
	m := metrics.NewMetrics("test")

	m.ObserveLookup("current", nil)
	m.ObserveLookup("current", nil)
	m.ObserveLookup("current", models.ErrLocationNotFound)
	m.ObserveLookup("hourly", &models.NetworkError{StatusCode: 500})
	m.ObserveLookup("hourly", &models.ParseError{Source: "forecast", Err: errors.New("bad")})
	m.ObserveLookup("hourly", models.ErrInvalidStride)

	assert.InDelta(t, 2, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("current", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("current", "not_found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("hourly", "network_error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("hourly", "parse_error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.LookupsTotal.WithLabelValues("hourly", "error")), 0)
}

func TestInstrumentTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)

	m := metrics.NewMetrics("test")
	client := &http.Client{Transport: m.InstrumentTransport(http.DefaultTransport)}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.InDelta(t, 1, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues("418", "get")), 0)
}

func TestHTTPMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.NewMetrics("test")

	r := gin.New()
	r.Use(m.HTTPMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/ping", "2xx")), 0)
}

func TestHandlerAndTextfile(t *testing.T) {
	m := metrics.NewMetrics("test")
	m.ObserveLookup("current", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `test_lookups_total{operation="current",result="ok"} 1`)

	path := filepath.Join(t.TempDir(), "weather.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "test_lookups_total"))
}

func TestPromCollector(t *testing.T) {
	m := metrics.NewMetrics("test")
	p := metrics.NewPromCollector(m.Registry())

	p.ObserveLatency("cache_get", 3*time.Millisecond)
	p.IncrementCounter("cache_get", "hit")
	p.IncrementCounter("cache_get", "hit")

	n, err := testutil.GatherAndCount(m.Registry(), "weather_cli_cache_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
