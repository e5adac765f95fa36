package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/attendance"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Training TrainingConfig
	Redis    RedisConfig
	Cron     CronConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int    `env:"APP_PORT" env-default:"8080"`
	Env         string `env:"APP_ENV" env-default:"development"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
	Locale      string `env:"APP_LOCALE" env-default:"ja"`
	Timezone    string `env:"APP_TIMEZONE" env-default:"Asia/Tokyo"`
	FrontendURL string `env:"FRONTEND_URL" env-default:"http://localhost:3000"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     int    `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" env-default:"training_attendance"`
	SSLMode  string `env:"DB_SSL_MODE" env-default:"disable"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string `env:"JWT_SECRET_KEY"`
	AccessExpiration string `env:"JWT_ACCESS_EXPIRATION_TIME" env-default:"12h"`
}

// TrainingConfig holds the reference boundaries used for late/early-leave classification.
type TrainingConfig struct {
	StartTime string `env:"TRAINING_START_TIME" env-default:"09:00"`
	EndTime   string `env:"TRAINING_END_TIME" env-default:"18:00"`
}

// RedisConfig configures the work-day cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `env:"REDIS_CALENDAR_TTL" env-default:"6h"`
}

type CronConfig struct {
	UnfilledAuditInterval time.Duration `env:"CRON_UNFILLED_AUDIT_INTERVAL" env-default:"24h"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
		slog.Warn("No .env file found, using process environment")
	}

	config := &Config{}
	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	start, err := attendance.ParseClockTime(c.Training.StartTime)
	if err != nil || !start.IsSet() {
		return fmt.Errorf("TRAINING_START_TIME must be HH:MM, got %q", c.Training.StartTime)
	}
	end, err := attendance.ParseClockTime(c.Training.EndTime)
	if err != nil || !end.IsSet() {
		return fmt.Errorf("TRAINING_END_TIME must be HH:MM, got %q", c.Training.EndTime)
	}
	if !start.Before(end) {
		return fmt.Errorf("TRAINING_START_TIME must be before TRAINING_END_TIME")
	}
	if c.Cron.UnfilledAuditInterval <= 0 {
		return fmt.Errorf("CRON_UNFILLED_AUDIT_INTERVAL must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the time zone training days are counted in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
