// FilePath: internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server    ServerConfig
	Database  PostgresConfig `mapstructure:"database"`
	Auth      AuthConfig
	Redis     RedisConfig
	Stream    StreamConfig
	Retention RetentionConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	BcryptCost int           `mapstructure:"bcrypt_cost"`
}

type RedisConfig struct {
	Host       string        `mapstructure:"host"`
	Port       int           `mapstructure:"port"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	SummaryTTL time.Duration `mapstructure:"summary_ttl"`
}

type StreamConfig struct {
	PingInterval time.Duration `mapstructure:"ping_interval"`
	ClientBuffer int           `mapstructure:"client_buffer"`
}

type RetentionConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	RecordMaxAge  time.Duration `mapstructure:"record_max_age"`
	AlertMaxAge   time.Duration `mapstructure:"alert_max_age"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetEnvPrefix("SMARTHIVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Load config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 4000)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", "15s")
	// The alert stream is long-lived; the write timeout must stay 0 or
	// connected dashboards get cut off between pings.
	viper.SetDefault("server.write_timeout", "0")
	viper.SetDefault("server.shutdown_timeout", "30s")
	viper.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.dbname", "smarthive")
	viper.SetDefault("database.sslmode", "disable")

	// Auth defaults
	viper.SetDefault("auth.token_ttl", "12h")
	viper.SetDefault("auth.bcrypt_cost", 10)

	// Redis defaults
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.summary_ttl", "15s")

	// Stream defaults
	viper.SetDefault("stream.ping_interval", "25s")
	viper.SetDefault("stream.client_buffer", 16)

	// Retention defaults, taken from the database expiry policies:
	// readings expire after 90 days, acknowledged alerts after 30.
	viper.SetDefault("retention.enabled", true)
	viper.SetDefault("retention.record_max_age", "2160h")
	viper.SetDefault("retention.alert_max_age", "720h")
	viper.SetDefault("retention.sweep_interval", "1h")
}

func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("auth jwt_secret is required")
	}
	if config.Stream.PingInterval <= 0 {
		return fmt.Errorf("stream ping_interval must be positive")
	}
	return nil
}
