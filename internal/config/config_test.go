package config

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.Server.Port)
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, 10*time.Second, cfg.BankClient.Timeout)
	assert.Equal(t, "http://localhost:8080/payments", cfg.BankClient.URL)
	assert.False(t, cfg.Events.Enabled())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GATEWAY_SERVER__PORT", "9000")
	t.Setenv("GATEWAY_BANK_CLIENT__URL", "http://bank.internal:8080/payments")
	t.Setenv("GATEWAY_BANK_CLIENT__TIMEOUT", "2500ms")
	t.Setenv("GATEWAY_EVENTS__BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("GATEWAY_STORE__BACKEND", "redis")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "http://bank.internal:8080/payments", cfg.BankClient.URL)
	assert.Equal(t, 2500*time.Millisecond, cfg.BankClient.Timeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.Brokers)
	assert.True(t, cfg.Events.Enabled())
	assert.Equal(t, StoreRedis, cfg.Store.Backend)
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Run("rejects unknown store backend", func(t *testing.T) {
		t.Setenv("GATEWAY_STORE__BACKEND", "mongo")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("rejects bank url that is not a url", func(t *testing.T) {
		t.Setenv("GATEWAY_BANK_CLIENT__URL", "not a url")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("rejects request timeout not above bank timeout", func(t *testing.T) {
		t.Setenv("GATEWAY_SERVER__REQUEST_TIMEOUT", "1s")
		t.Setenv("GATEWAY_BANK_CLIENT__TIMEOUT", "10s")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "request_timeout")
	})

	t.Run("rejects request timeout equal to bank timeout", func(t *testing.T) {
		t.Setenv("GATEWAY_SERVER__REQUEST_TIMEOUT", "10s")
		t.Setenv("GATEWAY_BANK_CLIENT__TIMEOUT", "10s")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("rejects write timeout not above request timeout", func(t *testing.T) {
		t.Setenv("GATEWAY_SERVER__WRITE_TIMEOUT", "20s")
		t.Setenv("GATEWAY_SERVER__REQUEST_TIMEOUT", "25s")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write_timeout")
	})

	t.Run("accepts ordered timeouts", func(t *testing.T) {
		t.Setenv("GATEWAY_BANK_CLIENT__TIMEOUT", "2s")
		t.Setenv("GATEWAY_SERVER__REQUEST_TIMEOUT", "3s")
		t.Setenv("GATEWAY_SERVER__WRITE_TIMEOUT", "4s")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	})

	t.Run("postgres backend requires database credentials", func(t *testing.T) {
		t.Setenv("GATEWAY_STORE__BACKEND", "postgres")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database")
	})

	t.Run("postgres backend with credentials", func(t *testing.T) {
		t.Setenv("GATEWAY_STORE__BACKEND", "postgres")
		t.Setenv("GATEWAY_DATABASE__HOST", "db")
		t.Setenv("GATEWAY_DATABASE__USER", "gateway")
		t.Setenv("GATEWAY_DATABASE__PASSWORD", "secret")
		t.Setenv("GATEWAY_DATABASE__NAME", "payments")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, 30*time.Second, cfg.Database.HealthCheckPeriod)
	})
}

func TestDatabaseConfig_PgxConfig(t *testing.T) {
	db := DatabaseConfig{
		Host:              "localhost",
		Port:              5432,
		User:              "gateway",
		Password:          "p@ss word",
		Name:              "payments",
		SSLMode:           "disable",
		MaxOpenConns:      8,
		MaxIdleConns:      2,
		ConnMaxLifetime:   time.Hour,
		ConnMaxIdleTime:   time.Minute,
		HealthCheckPeriod: 15 * time.Second,
	}

	cfg, err := db.PgxConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(8), cfg.MaxConns)
	assert.Equal(t, 15*time.Second, cfg.HealthCheckPeriod)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, "payment-gateway", cfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, int32(2), cfg.MinConns)
	assert.Equal(t, "p@ss word", cfg.ConnConfig.Password)
	assert.Equal(t, "payments", cfg.ConnConfig.Database)
}

func TestLoggerConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := LoggerConfig{Level: "warn", Format: "json"}.newLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}
