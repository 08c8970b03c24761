package cmd

import (
	"testing"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := loadConfig(aconfig.Config{SkipFlags: true})

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTP.Port)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
		assert.Equal(t, 10, cfg.LowStockThreshold)
		assert.False(t, cfg.Kafka.Enabled())
		assert.Equal(t, "*/30 * * * * *", cfg.Jobs.DashboardSummary)
	})

	t.Run("should read prefixed environment", func(t *testing.T) {
		t.Setenv("STOREADMIN_HTTP_PORT", "9090")
		t.Setenv("STOREADMIN_DB_HOST", "db")
		t.Setenv("STOREADMIN_KAFKA_BROKERS", "k1:9092,k2:9092")
		t.Setenv("STOREADMIN_REDIS_SUMMARY_TTL", "5m")

		cfg, err := loadConfig(aconfig.Config{SkipFlags: true})

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTP.Port)
		assert.Contains(t, cfg.DB.DSN(), "host=db ")
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
		assert.Equal(t, 5*time.Minute, cfg.Redis.SummaryTTL)
	})

	t.Run("should read seed flag", func(t *testing.T) {
		cfg, err := loadConfig(aconfig.Config{Args: []string{"-seed"}})

		require.NoError(t, err)
		assert.True(t, cfg.Seed)
	})

	t.Run("should reject non positive threshold", func(t *testing.T) {
		t.Setenv("STOREADMIN_LOW_STOCK_THRESHOLD", "0")

		_, err := loadConfig(aconfig.Config{SkipFlags: true})

		assert.Error(t, err)
	})
}
