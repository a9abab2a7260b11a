package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
	// BaseURL overrides the Gemini API endpoint. Empty uses the SDK default.
	BaseURL string
}

type UploadConfig struct {
	MaxFileSize int64
}

var defaults = map[string]interface{}{
	"port":               "3000",
	"env":                "development",
	"log_level":          "info",
	"log_format":         "console",
	"db_enabled":         false,
	"db_host":            "localhost",
	"db_port":            "5432",
	"db_user":            "postgres",
	"db_password":        "postgres",
	"db_name":            "career_copilot",
	"gemini_api_key":     "",
	"gemini_model":       "gemini-2.5-flash",
	"gemini_temperature": 0.7,
	"gemini_timeout":     "60s",
	"gemini_base_url":    "",
	"max_upload_size":    10485760,
}

// Load reads .env (if present), an optional config.yaml and the process
// environment, in increasing order of precedence.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Ignoring unreadable config file: %v", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	timeout := v.GetDuration("gemini_timeout")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Config{
		Server: ServerConfig{
			Port: v.GetString("port"),
			Env:  v.GetString("env"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log_level")),
			Format: strings.ToLower(v.GetString("log_format")),
		},
		Database: DatabaseConfig{
			Enabled:  v.GetBool("db_enabled"),
			Host:     v.GetString("db_host"),
			Port:     v.GetString("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			DBName:   v.GetString("db_name"),
		},
		Gemini: GeminiConfig{
			APIKey:      strings.TrimSpace(v.GetString("gemini_api_key")),
			Model:       v.GetString("gemini_model"),
			Temperature: float32(v.GetFloat64("gemini_temperature")),
			Timeout:     timeout,
			BaseURL:     strings.TrimSpace(v.GetString("gemini_base_url")),
		},
		Upload: UploadConfig{
			MaxFileSize: v.GetInt64("max_upload_size"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

// IsDevelopment reports whether verbose logging (SQL, request bodies) is wanted.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}
