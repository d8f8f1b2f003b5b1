package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel  LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP      HTTP       `mapstructure:",squash"`
	Redis     Redis      `mapstructure:",squash"`
	Catalogue Catalogue  `mapstructure:",squash"`
	Search    Search     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Catalogue configures the flight catalogue source and its snapshot cache.
// The snapshot path routes to the inventory feed export.
type Catalogue struct {
	SnapshotPath    string        `mapstructure:"CATALOGUE_SNAPSHOT_PATH"`
	Timeout         time.Duration `mapstructure:"CATALOGUE_TIMEOUT"`
	MaxRetries      int           `mapstructure:"CATALOGUE_MAX_RETRIES"`
	RateLimitRPS    int           `mapstructure:"CATALOGUE_RATE_LIMIT"`
	CacheExpiration time.Duration `mapstructure:"CATALOGUE_CACHE_EXPIRATION"`
	LockTimeout     time.Duration `mapstructure:"CATALOGUE_LOCK_TIMEOUT"`
}

// Search holds the itinerary enumeration policy knobs.
type Search struct {
	MaxLegs    int           `mapstructure:"SEARCH_MAX_LEGS"`
	MinLayover time.Duration `mapstructure:"SEARCH_MIN_LAYOVER"`
	MaxLayover time.Duration `mapstructure:"SEARCH_MAX_LAYOVER"`
}
