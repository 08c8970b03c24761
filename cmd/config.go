package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/joho/godotenv"
)

// Config is filled from STOREADMIN_ environment variables, an optional
// config.yaml and command line flags, in that order of increasing priority.
type Config struct {
	HTTP                 HTTPConfig
	DB                   DBConfig
	Kafka                KafkaConfig
	Redis                RedisConfig
	Jobs                 JobsConfig
	LowStockThreshold    int  `env:"LOW_STOCK_THRESHOLD" default:"10" usage:"Products below this quantity are low on stock"`
	NotificationCapacity int  `env:"NOTIFICATION_CAPACITY" default:"100" usage:"Notifications kept in the feed"`
	Seed                 bool `env:"SEED" default:"false" flag:"seed" usage:"Load the demo dataset into an empty store"`
}

type HTTPConfig struct {
	Port            string        `env:"PORT" default:"8080" usage:"HTTP listen port"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"15s" usage:"Maximum graceful shutdown duration"`
}

type DBConfig struct {
	Host     string `env:"HOST" default:"localhost"`
	Port     string `env:"PORT" default:"5432"`
	User     string `env:"USER" default:"postgres"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" default:"storeadmin"`
	SSLMode  string `env:"SSLMODE" default:"disable"`
}

// DSN renders the connection string for gorm's postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// KafkaConfig leaves Brokers empty to run without the event bus.
type KafkaConfig struct {
	Brokers       []string `env:"BROKERS" usage:"Kafka bootstrap brokers"`
	Topic         string   `env:"TOPIC" default:"storeadmin.order-status-changed"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" default:"storeadmin"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

type RedisConfig struct {
	Addr       string        `env:"ADDR" default:"localhost:6379"`
	Password   string        `env:"PASSWORD"`
	DB         int           `env:"DB" default:"0"`
	SummaryTTL time.Duration `env:"SUMMARY_TTL" default:"1m" usage:"Lifetime of the cached dashboard summary"`
}

type JobsConfig struct {
	WorkingSetRefresh string `env:"WORKING_SET_REFRESH" default:"0 * * * * *" usage:"Cron spec of the order reload"`
	DashboardSummary  string `env:"DASHBOARD_SUMMARY" default:"*/30 * * * * *" usage:"Cron spec of the summary refresh"`
}

// LoadConfig reads .env when present and then loads Config.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return loadConfig(aconfig.Config{})
}

func loadConfig(base aconfig.Config) (Config, error) {
	base.EnvPrefix = "STOREADMIN"
	base.Files = []string{"config.yaml"}
	base.FileDecoders = map[string]aconfig.FileDecoder{
		".yaml": aconfigyaml.New(),
	}

	var cfg Config
	if err := aconfig.LoaderFor(&cfg, base).Load(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if cfg.LowStockThreshold <= 0 {
		return Config{}, fmt.Errorf("low stock threshold must be positive, got %d", cfg.LowStockThreshold)
	}
	return cfg, nil
}
