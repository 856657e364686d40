package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	HTTP      HTTPConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host              string
	Port              string
	Name              string
	User              string
	Password          string
	SSLMode           string
	MaxConns          int32
	MigrationsAutoRun bool
}

type HTTPConfig struct {
	MetricsEnabled  bool
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// RateLimitConfig disables limiting when RPS is zero
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// LoadConfig reads the .env file at path (if present) and lets environment
// variables override it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "backend-games")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MIGRATIONS_AUTO_RUN", false)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	if err := v.ReadInConfig(); err != nil {
		// the file is optional, containers configure through the environment
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:              v.GetString("DB_HOST"),
			Port:              v.GetString("DB_PORT"),
			Name:              v.GetString("DB_NAME"),
			User:              v.GetString("DB_USER"),
			Password:          v.GetString("DB_PASS"),
			SSLMode:           v.GetString("DB_SSLMODE"),
			MaxConns:          v.GetInt32("DB_MAX_CONNS"),
			MigrationsAutoRun: v.GetBool("MIGRATIONS_AUTO_RUN"),
		},
		HTTP: HTTPConfig{
			MetricsEnabled:  v.GetBool("METRICS_ENABLED"),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if config.Database.Name == "" {
		return nil, errors.New("DB_NAME is required")
	}

	return config, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
