package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task store
	Storage StorageConfig

	// Optional integrations
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// StorageConfig selects the durable slot the task list is saved into.
type StorageConfig struct {
	Driver string // memory, file, sqlite, mysql
	Path   string // file and sqlite
	DSN    string // mysql
	Key    string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	Timezone        string
	EventDuration   time.Duration
}

// Enabled reports whether calendar scheduling should be wired.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Storage.DSN = v.GetString("storage.dsn")
	cfg.Storage.Key = v.GetString("storage.key")
	if dsn := v.GetString("storage_dsn"); dsn != "" {
		cfg.Storage.DSN = dsn
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = v.GetString("google_calendar.timezone")
	cfg.GoogleCalendar.EventDuration = v.GetDuration("google_calendar.event_duration")
	if creds := v.GetString("google_calendar_credentials"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", "data/tasks.json")
	v.SetDefault("storage.key", "tasks")

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.timezone", "UTC")
	v.SetDefault("google_calendar.event_duration", "30m")
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case "memory":
	case "file", "sqlite":
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for driver %q", cfg.Storage.Driver)
		}
	case "mysql":
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for driver mysql")
		}
	default:
		return fmt.Errorf("unsupported storage.driver %q", cfg.Storage.Driver)
	}

	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}
