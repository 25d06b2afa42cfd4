package config

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"CHARGEHUB_APP_NAME":                os.Getenv("CHARGEHUB_APP_NAME"),
		"CHARGEHUB_APP_ENV":                 os.Getenv("CHARGEHUB_APP_ENV"),
		"CHARGEHUB_APP_PORT":                os.Getenv("CHARGEHUB_APP_PORT"),
		"CHARGEHUB_DATABASE_HOST":           os.Getenv("CHARGEHUB_DATABASE_HOST"),
		"CHARGEHUB_DATABASE_PORT":           os.Getenv("CHARGEHUB_DATABASE_PORT"),
		"CHARGEHUB_DATABASE_USER":           os.Getenv("CHARGEHUB_DATABASE_USER"),
		"CHARGEHUB_DATABASE_PASSWORD":       os.Getenv("CHARGEHUB_DATABASE_PASSWORD"),
		"CHARGEHUB_DATABASE_DBNAME":         os.Getenv("CHARGEHUB_DATABASE_DBNAME"),
		"CHARGEHUB_DATABASE_SSLMODE":        os.Getenv("CHARGEHUB_DATABASE_SSLMODE"),
		"CHARGEHUB_DATABASE_MAX_OPEN_CONNS": os.Getenv("CHARGEHUB_DATABASE_MAX_OPEN_CONNS"),
		"CHARGEHUB_DATABASE_MAX_IDLE_CONNS": os.Getenv("CHARGEHUB_DATABASE_MAX_IDLE_CONNS"),
		"CHARGEHUB_BILLING_COST_PER_KWH":    os.Getenv("CHARGEHUB_BILLING_COST_PER_KWH"),
		"CHARGEHUB_BILLING_CONNECTION_FEE":  os.Getenv("CHARGEHUB_BILLING_CONNECTION_FEE"),
		"CHARGEHUB_REDIS_ENABLED":           os.Getenv("CHARGEHUB_REDIS_ENABLED"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "chargehub-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "", cfg.Database.Password)
		assert.Equal(t, "chargehub", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "0.50", cfg.Billing.CostPerKwh)
		assert.Equal(t, "1", cfg.Billing.ConnectionFee)
		assert.False(t, cfg.Redis.Enabled)
	})

	t.Run("loads values from environment variables with CHARGEHUB prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("CHARGEHUB_APP_NAME", "test-app")
		os.Setenv("CHARGEHUB_APP_ENV", "testing")
		os.Setenv("CHARGEHUB_APP_PORT", "9000")
		os.Setenv("CHARGEHUB_DATABASE_HOST", "testdb.local")
		os.Setenv("CHARGEHUB_DATABASE_PORT", "5433")
		os.Setenv("CHARGEHUB_DATABASE_USER", "testuser")
		os.Setenv("CHARGEHUB_DATABASE_PASSWORD", "testpass")
		os.Setenv("CHARGEHUB_DATABASE_DBNAME", "testdb")
		os.Setenv("CHARGEHUB_DATABASE_SSLMODE", "require")
		os.Setenv("CHARGEHUB_BILLING_COST_PER_KWH", "0.42")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, "0.42", cfg.Billing.CostPerKwh)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("CHARGEHUB_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("CHARGEHUB_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("CHARGEHUB_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so default (25) is used
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("rejects malformed cost per kWh", func(t *testing.T) {
		clearEnv()
		os.Setenv("CHARGEHUB_BILLING_COST_PER_KWH", "fifty cents")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cost_per_kwh")
	})

	t.Run("rejects negative connection fee", func(t *testing.T) {
		clearEnv()
		os.Setenv("CHARGEHUB_BILLING_CONNECTION_FEE", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection_fee")
	})

	t.Run("production requires database password", func(t *testing.T) {
		clearEnv()
		os.Setenv("CHARGEHUB_APP_ENV", "production")
		os.Setenv("CHARGEHUB_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("production rejects sslmode disable", func(t *testing.T) {
		clearEnv()
		os.Setenv("CHARGEHUB_APP_ENV", "production")
		os.Setenv("CHARGEHUB_DATABASE_PASSWORD", "secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})
}

func TestBillingConfigDecimals(t *testing.T) {
	t.Run("parses tariff values", func(t *testing.T) {
		billing := BillingConfig{CostPerKwh: "0.50", ConnectionFee: "1"}

		cost, err := billing.CostPerKwhDecimal()
		require.NoError(t, err)
		assert.True(t, cost.Equal(decimal.RequireFromString("0.50")))

		fee, err := billing.ConnectionFeeDecimal()
		require.NoError(t, err)
		assert.True(t, fee.Equal(decimal.NewFromInt(1)))
	})
}

func TestDatabaseConfigDSN(t *testing.T) {
	t.Run("builds postgres DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		// URL-encoded password should be in the DSN
		assert.Contains(t, dsn, "pass%40word%23123")
	})
}

func TestRedisConfigAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.local", Port: 6380}

	assert.Equal(t, "cache.local:6380", cfg.Addr())
}
