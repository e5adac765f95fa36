package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		App:      AppConfig{Port: 8080, Timezone: "Asia/Tokyo", Locale: "ja"},
		Database: DatabaseConfig{Password: "secret"},
		JWT:      JWTConfig{Secret: "jwt-secret", AccessExpiration: "12h"},
		Training: TrainingConfig{StartTime: "09:00", EndTime: "18:00"},
		Cron:     CronConfig{UnfilledAuditInterval: 24 * time.Hour},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing db password", mutate: func(c *Config) { c.Database.Password = "" }, wantErr: "DB_PASSWORD"},
		{name: "missing jwt secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "JWT_SECRET_KEY"},
		{name: "bad expiration", mutate: func(c *Config) { c.JWT.AccessExpiration = "soon" }, wantErr: "JWT_ACCESS_EXPIRATION_TIME"},
		{name: "bad start boundary", mutate: func(c *Config) { c.Training.StartTime = "9:00" }, wantErr: "TRAINING_START_TIME"},
		{name: "bad end boundary", mutate: func(c *Config) { c.Training.EndTime = "24:00" }, wantErr: "TRAINING_END_TIME"},
		{name: "inverted boundaries", mutate: func(c *Config) { c.Training.StartTime = "19:00" }, wantErr: "before"},
		{name: "empty start boundary", mutate: func(c *Config) { c.Training.StartTime = "" }, wantErr: "TRAINING_START_TIME"},
		{name: "minute out of range", mutate: func(c *Config) { c.Training.EndTime = "18:60" }, wantErr: "TRAINING_END_TIME"},
		{name: "equal boundaries", mutate: func(c *Config) { c.Training.StartTime = c.Training.EndTime }, wantErr: "before"},
		{name: "zero audit interval", mutate: func(c *Config) { c.Cron.UnfilledAuditInterval = 0 }, wantErr: "CRON_UNFILLED_AUDIT_INTERVAL"},
		{name: "bad timezone", mutate: func(c *Config) { c.App.Timezone = "Mars/Olympus" }, wantErr: "APP_TIMEZONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_DatabaseURL(t *testing.T) {
	c := validConfig()
	c.Database.Host = "db"
	c.Database.Port = 5433
	c.Database.User = "lms"
	c.Database.Name = "attendance"
	c.Database.SSLMode = "disable"

	assert.Equal(t, "postgres://lms:secret@db:5433/attendance?sslmode=disable", c.DatabaseURL())
}

func TestConfig_Location(t *testing.T) {
	c := validConfig()
	assert.Equal(t, "Asia/Tokyo", c.Location().String())
}
