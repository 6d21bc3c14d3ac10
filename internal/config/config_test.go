package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, int64(1), cfg.App.ProfileID)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	viper.Reset()

	t.Setenv("APP_PORT", "8080")
	t.Setenv("APP_PROFILE_ID", "7")
	t.Setenv("DB_DSN", "postgres://localhost:5432/me_api")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, int64(7), cfg.App.ProfileID)
	assert.Equal(t, "postgres://localhost:5432/me_api", cfg.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Kafka.Brokers)
}
