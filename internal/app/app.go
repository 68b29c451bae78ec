package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"github.com/Nazarious-ucu/weather-cli/internal/cli"
	"github.com/Nazarious-ucu/weather-cli/internal/config"
	http2 "github.com/Nazarious-ucu/weather-cli/internal/handlers/http"
	"github.com/Nazarious-ucu/weather-cli/internal/models"
	"github.com/Nazarious-ucu/weather-cli/internal/services/cache"
	"github.com/Nazarious-ucu/weather-cli/internal/services/fetcher"
	loggerT "github.com/Nazarious-ucu/weather-cli/internal/services/logger"
	metricsSvc "github.com/Nazarious-ucu/weather-cli/internal/services/metrics"
	serviceWeather "github.com/Nazarious-ucu/weather-cli/internal/services/weather"
	"github.com/Nazarious-ucu/weather-cli/internal/services/weather/decorators"
	fLogger "github.com/Nazarious-ucu/weather-cli/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type weatherService interface {
	CurrentWeather(ctx context.Context, name string) (models.CurrentReport, error)
	HourlyWeather(ctx context.Context, name string) (models.HourlyReport, error)
}

type forecastSource interface {
	FetchHourly(ctx context.Context, lat, lon float64) (models.HourlySeries, error)
}

// ServiceContainer holds initialized dependencies for both run modes.
type ServiceContainer struct {
	WeatherService weatherService

	fileLogger *zap.Logger
	closers    []io.Closer
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics

	// now is the clock used to pick the current hour.
	now func() time.Time
}

// New prepares a new App with given config, zerolog logger, and metrics.
func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
		now: time.Now,
	}
}

// WithClock replaces the clock used to pick the current hour.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// RunCLI runs the interactive menu over in and out.
func (a *App) RunCLI(ctx context.Context, in io.Reader, out io.Writer) error {
	srvContainer, err := a.init()
	if err != nil {
		return err
	}
	defer a.Shutdown(srvContainer)

	return cli.NewRunner(srvContainer.WeatherService, a.l).Run(ctx, in, out)
}

// Serve exposes the lookups over HTTP until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	srvContainer, err := a.init()
	if err != nil {
		return err
	}
	defer a.Shutdown(srvContainer)

	srv := &http.Server{
		Addr:        a.cfg.Server.Address,
		Handler:     a.Router(srvContainer),
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.l.Info().Str("address", srv.Addr).Msg("HTTP server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.l.Error().Err(err).Msg("HTTP server failed")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.l.Info().Msg("shutdown signal received, stopping HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Router builds the gin engine for serve mode.
func (a *App) Router(srvContainer ServiceContainer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(a.m.HTTPMiddleware())

	router.GET("/metrics", gin.WrapH(a.m.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	http2.NewHandler(srvContainer.WeatherService).Register(router)
	return router
}

// Shutdown flushes loggers, closes the cache and exports metrics.
func (a *App) Shutdown(srvContainer ServiceContainer) {
	for _, c := range srvContainer.closers {
		if err := c.Close(); err != nil {
			a.l.Error().Err(err).Msg("failed to close resource")
		}
	}

	if path := a.cfg.MetricsTextfile; path != "" {
		if err := a.m.WriteTextfile(path); err != nil {
			a.l.Error().Err(err).Str("path", path).Msg("failed to write metrics textfile")
		}
	}

	if srvContainer.fileLogger != nil {
		if err := srvContainer.fileLogger.Sync(); err != nil {
			a.l.Debug().Err(err).Msg("failed to sync file logger")
		}
	}
}

// init wires fetchers, geocoder, forecast client and service without running anything.
func (a *App) init() (ServiceContainer, error) {
	a.l.Debug().Msgf("initializing weather client with config: %+v", a.cfg)

	fileLogger, err := fLogger.NewFileLogger(a.cfg.HTTPLogPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create HTTP file logger")
		fileLogger = zap.NewNop()
	}

	// HTTP client: logging + metrics, finite timeout
	transport := a.m.InstrumentTransport(loggerT.NewRoundTripper(fileLogger, http.DefaultTransport))
	httpClient := &http.Client{Transport: transport, Timeout: a.cfg.HTTPTimeout()}
	base := fetcher.NewClient(httpClient, a.l)

	breakerCfg := fetcher.BreakerConfig{
		TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: a.cfg.Breaker.RepeatNumber,
	}

	geocoder := serviceWeather.NewGeocoder(a.cfg.OpenMeteo.GeocodingURL,
		fetcher.NewBreakerFetcher("Geocoding", breakerCfg, base), a.l)

	forecastClient, err := serviceWeather.NewForecastClient(a.cfg.OpenMeteo.ForecastURL,
		a.cfg.OpenMeteo.Timezone, fetcher.NewBreakerFetcher("Forecast", breakerCfg, base), a.l)
	if err != nil {
		return ServiceContainer{}, err
	}

	strategy, err := serviceWeather.ParseStrategy(a.cfg.OpenMeteo.SelectStrategy)
	if err != nil {
		return ServiceContainer{}, err
	}

	var forecast forecastSource = forecastClient
	var closers []io.Closer
	if a.cfg.Redis.Enabled {
		redisClient := cache.NewRedisClient[models.HourlySeries](
			newRedisConnection(a.cfg.RedisAddress(), a.cfg.Redis.DB), a.l, a.cfg.CacheTTL())
		cacheMetrics := cache.NewMetricsDecorator[models.HourlySeries](
			redisClient,
			metricsSvc.NewPromCollector(a.m.Registry()),
		)
		forecast = decorators.NewCachedForecast(forecastClient, cacheMetrics, a.l)
		closers = append(closers, redisClient)
		a.l.Info().Str("address", a.cfg.RedisAddress()).Msg("forecast cache enabled")
	}

	rawService := serviceWeather.NewService(a.l, geocoder, forecast,
		serviceWeather.NewSelector(forecastClient.Location(), strategy), a.now)

	return ServiceContainer{
		WeatherService: decorators.NewMetricsService(rawService, a.m),
		fileLogger:     fileLogger,
		closers:        closers,
	}, nil
}

func newRedisConnection(connString string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: connString, DB: db})
}
