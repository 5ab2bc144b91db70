// Package config loads the service configuration from environment variables.
// Nothing here is global: the loaded Config is passed to each component.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	AppEnv      string `validate:"required,oneof=development production test"`
	HTTP        HTTPConfig
	FlightAware FlightAwareConfig
	OpenFlights OpenFlightsConfig
	Database    DatabaseConfig
	Cache       CacheConfig
	Redis       RedisConfig
	Refresh     RefreshConfig
}

// HTTPConfig also sizes the per-client API rate limiter.
type HTTPConfig struct {
	Addr              string  `validate:"required"`
	RequestsPerSecond float64 `validate:"gt=0"`
	Burst             int     `validate:"gte=1"`
}

// FlightAwareConfig holds FlightXML3 credentials and client limits.
type FlightAwareConfig struct {
	BaseURL           string        `validate:"required,url"`
	Username          string        `validate:"required"`
	APIKey            string        `validate:"required"`
	Timeout           time.Duration `validate:"gt=0"`
	RequestsPerSecond float64       `validate:"gt=0"`
	Burst             int           `validate:"gte=1"`
}

type OpenFlightsConfig struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type DatabaseConfig struct {
	Driver string `validate:"required,oneof=sqlite postgres"`
	DSN    string `validate:"required"`
}

type CacheConfig struct {
	Backend    string        `validate:"required,oneof=memory redis"`
	AirportTTL time.Duration `validate:"gt=0"`
}

type RedisConfig struct {
	Host     string `validate:"required_if=Enabled true"`
	Port     string `validate:"required_if=Enabled true"`
	Password string
	DB       int `validate:"gte=0"`
	Enabled  bool
}

// RefreshConfig sizes the background path refresh pool.
type RefreshConfig struct {
	Workers       int           `validate:"gte=1"`
	QueueSize     int           `validate:"gte=1"`
	SweepInterval time.Duration `validate:"gt=0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Addr:              getEnv("HTTP_ADDR", ":8080"),
			RequestsPerSecond: getFloat("HTTP_REQUESTS_PER_SECOND", 5),
			Burst:             getInt("HTTP_BURST", 20),
		},
		FlightAware: FlightAwareConfig{
			BaseURL:           getEnv("FA_BASE_URL", "https://flightxml.flightaware.com/json/FlightXML3"),
			Username:          os.Getenv("FA_USERNAME"),
			APIKey:            os.Getenv("FA_API_KEY"),
			Timeout:           getDuration("FA_TIMEOUT", 10*time.Second),
			RequestsPerSecond: getFloat("FA_REQUESTS_PER_SECOND", 2),
			Burst:             getInt("FA_BURST", 4),
		},
		OpenFlights: OpenFlightsConfig{
			BaseURL: getEnv("OPENFLIGHTS_BASE_URL", "https://openflights.org/php/apsearch.php"),
			Timeout: getDuration("OPENFLIGHTS_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite"),
			DSN:    getEnv("DB_DSN", "atlas.db"),
		},
		Cache: CacheConfig{
			Backend:    getEnv("CACHE_BACKEND", "memory"),
			AirportTTL: getDuration("AIRPORT_CACHE_TTL", 24*time.Hour),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},
		Refresh: RefreshConfig{
			Workers:       getInt("REFRESH_WORKERS", 2),
			QueueSize:     getInt("REFRESH_QUEUE_SIZE", 100),
			SweepInterval: getDuration("PATH_SWEEP_INTERVAL", time.Hour),
		},
	}
	cfg.Redis.Enabled = cfg.Cache.Backend == "redis"

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct tags and reports every failing field at once.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return fallback
}
