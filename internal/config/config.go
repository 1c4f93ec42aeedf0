package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "GATEWAY_"

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Primary    Primary        `koanf:"primary"`
	Server     ServerConfig   `koanf:"server"`
	BankClient BankConfig     `koanf:"bank_client"`
	Store      StoreConfig    `koanf:"store"`
	Database   DatabaseConfig `koanf:"database" validate:"-"`
	Redis      RedisConfig    `koanf:"redis"`
	Events     EventsConfig   `koanf:"events"`
	Logger     LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

// BankConfig points at the acquiring bank's payment endpoint.
type BankConfig struct {
	URL     string        `koanf:"url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

type StoreConfig struct {
	Backend string `koanf:"backend" validate:"required,oneof=memory postgres redis"`
}

type DatabaseConfig struct {
	Host              string        `koanf:"host" validate:"required"`
	Port              int           `koanf:"port" validate:"required"`
	User              string        `koanf:"user" validate:"required"`
	Password          string        `koanf:"password" validate:"required"`
	Name              string        `koanf:"name" validate:"required"`
	SSLMode           string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns      int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns      int           `koanf:"max_idle_conns"`
	ConnMaxLifetime   time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime   time.Duration `koanf:"conn_max_idle_time" validate:"required"`
	// HealthCheckPeriod is how often idle pool connections are pinged.
	HealthCheckPeriod time.Duration `koanf:"health_check_period" validate:"required"`
}

type RedisConfig struct {
	Addr      string `koanf:"addr" validate:"required"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db" validate:"min=0"`
	KeyPrefix string `koanf:"key_prefix" validate:"required"`
}

// EventsConfig enables outcome events. Publishing is off while Brokers is empty.
type EventsConfig struct {
	Brokers    []string `koanf:"brokers"`
	Topic      string   `koanf:"topic" validate:"required"`
	BufferSize int      `koanf:"buffer_size" validate:"required,min=1"`
}

func (c EventsConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                  "development",
		"server.port":                  "8090",
		"server.read_timeout":          "10s",
		"server.write_timeout":         "30s",
		"server.idle_timeout":          "60s",
		"server.request_timeout":       "25s",
		"bank_client.url":              "http://localhost:8080/payments",
		"bank_client.timeout":          "10s",
		"store.backend":                StoreMemory,
		"database.port":                5432,
		"database.ssl_mode":            "disable",
		"database.max_open_conns":      10,
		"database.max_idle_conns":      2,
		"database.conn_max_lifetime":   "1h",
		"database.conn_max_idle_time":  "30m",
		"database.health_check_period": "30s",
		"redis.addr":                   "localhost:6379",
		"redis.db":                     0,
		"redis.key_prefix":             "payment",
		"events.topic":                 "payments.recorded",
		"events.buffer_size":           256,
		"logger.level":                 "info",
		"logger.format":                "json",
	}
}

// LoadConfig reads defaults, then GATEWAY_* environment variables. Nested keys
// use a double underscore: GATEWAY_BANK_CLIENT__URL sets bank_client.url.
func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks the struct tags and the ordering of the timeouts. Database
// settings are only checked when the postgres backend is selected.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return err
	}

	// a payment request must outlive its bank call, and the server write
	// deadline must outlive the request
	if c.Server.RequestTimeout <= c.BankClient.Timeout {
		return fmt.Errorf("server.request_timeout (%s) must exceed bank_client.timeout (%s)",
			c.Server.RequestTimeout, c.BankClient.Timeout)
	}
	if c.Server.WriteTimeout <= c.Server.RequestTimeout {
		return fmt.Errorf("server.write_timeout (%s) must exceed server.request_timeout (%s)",
			c.Server.WriteTimeout, c.Server.RequestTimeout)
	}

	if c.Store.Backend == StorePostgres {
		if err := validate.Struct(c.Database); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}

	return nil
}
