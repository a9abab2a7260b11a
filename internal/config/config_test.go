package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	cfg := fromViper(newTestViper())

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.InDelta(t, 0.7, cfg.Gemini.Temperature, 0.0001)
	assert.Empty(t, cfg.Gemini.APIKey)
	assert.Empty(t, cfg.Gemini.BaseURL)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
	assert.True(t, cfg.IsDevelopment())
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("GEMINI_API_KEY", "  secret  ")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("GEMINI_TIMEOUT", "15s")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("GEMINI_BASE_URL", " http://localhost:9999 ")

	cfg := fromViper(newTestViper())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 15*time.Second, cfg.Gemini.Timeout)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://localhost:9999", cfg.Gemini.BaseURL)
}

func TestFromViper_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("GEMINI_TIMEOUT", "0s")
	cfg := fromViper(newTestViper())
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", DBName: "copilot",
	}}
	assert.Equal(t,
		"host=db port=5433 user=u password=p dbname=copilot sslmode=disable",
		cfg.GetDatabaseDSN())
}
