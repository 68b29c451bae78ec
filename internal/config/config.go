package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

type OpenMeteo struct {
	GeocodingURL string `envconfig:"GEOCODING_API_URL" default:"https://geocoding-api.open-meteo.com/v1/search" validate:"required,url"`
	ForecastURL  string `envconfig:"FORECAST_API_URL" default:"https://api.open-meteo.com/v1/forecast" validate:"required,url"`
	Timezone     string `envconfig:"FORECAST_TIMEZONE" default:"America/Los_Angeles" validate:"required"`
	// Seconds.
	Timeout        int    `envconfig:"HTTP_TIMEOUT" default:"10" validate:"gt=0"`
	SelectStrategy string `envconfig:"SELECT_STRATEGY" default:"exact" validate:"oneof=exact nearest-hour"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30" validate:"gte=0"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10" validate:"gt=0"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5" validate:"gt=0"`
}

type Redis struct {
	Enabled bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host    string `envconfig:"REDIS_HOST" default:"localhost"`
	Port    string `envconfig:"REDIS_PORT" default:"6379"`
	DB      int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	// Minutes.
	LiveTime int `envconfig:"REDIS_LIVE_TIME" default:"15" validate:"gt=0"`
}

type Server struct {
	Address     string `envconfig:"SERVER_ADDRESS" default:":8080"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10" validate:"gt=0"`
}

type Config struct {
	OpenMeteo OpenMeteo
	Breaker   Breaker
	Redis     Redis
	Server    Server

	LogsPath        string `envconfig:"LOGS_PATH" default:"./log/weather-cli.log"`
	HTTPLogPath     string `envconfig:"HTTP_LOG_PATH" default:"./log/http.log"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=trace debug info warn error fatal panic disabled"`
	MetricsTextfile string `envconfig:"METRICS_TEXTFILE"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.OpenMeteo.Timeout) * time.Second
}

func (c *Config) RedisAddress() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Redis.LiveTime) * time.Minute
}
