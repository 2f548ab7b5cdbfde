package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidSourceKind           = errors.New("invalid glossary source kind")
)

// Glossary source kinds.
const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"`         // current application environment (local, dev, production)
	TelegramAPIToken string `mapstructure:"-"`           // Telegram API token loaded from environment
	SQLitePath       string `mapstructure:"sqlite_path"` // SQLite database file for the sqlite source
	Source           Source `mapstructure:"source"`      // glossary source section
	Quiz             Quiz   `mapstructure:"quiz"`        // question generation section
	DB               DB     `mapstructure:"database"`    // database configuration section
}

// Source describes where the raw glossary text comes from.
type Source struct {
	Kind        string        `mapstructure:"kind"`         // file, http, postgres or sqlite
	Location    string        `mapstructure:"location"`     // file path, URL, or glossary name in the database
	HTTPTimeout time.Duration `mapstructure:"http_timeout"` // timeout for the http source
	MaxBytes    int64         `mapstructure:"max_bytes"`    // body size limit for the http source
}

// Quiz contains question generation options.
type Quiz struct {
	BlankMarker      string `mapstructure:"blank_marker"`      // placeholder for the answer term in prompts
	ShuffleQuestions bool   `mapstructure:"shuffle_questions"` // shuffle question order on load
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int32         `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from an optional .env file, config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("source.kind", SourceFile)
	v.SetDefault("source.location", "assets/glossary.txt")
	v.SetDefault("source.http_timeout", "30s")
	v.SetDefault("source.max_bytes", 1<<20)
	v.SetDefault("sqlite_path", "glossary.db")
	v.SetDefault("quiz.blank_marker", "_____")
	v.SetDefault("quiz.shuffle_questions", false)
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("source.kind", "GLOSSARY_SOURCE")
	_ = v.BindEnv("source.location", "GLOSSARY_LOCATION")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the selected glossary source has what it needs.
func (c *Config) Validate() error {
	c.Source.Kind = strings.ToLower(strings.TrimSpace(c.Source.Kind))

	switch c.Source.Kind {
	case SourceFile, SourceHTTP:
	case SourcePostgres:
		if _, err := c.DB.DSN(); err != nil {
			return fmt.Errorf("%s source: DATABASE_URL: %w", SourcePostgres, err)
		}
	case SourceSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%s source: sqlite_path is empty", SourceSQLite)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSourceKind, c.Source.Kind)
	}

	if c.Source.Location == "" {
		return fmt.Errorf("source.location is empty")
	}

	return nil
}

// RequireTelegram returns an error when the bot token is not configured.
func (c *Config) RequireTelegram() error {
	if c.TelegramAPIToken == "" {
		return fmt.Errorf("TELEGRAM_API_TOKEN: %w", ErrMissingEnvironmentVariables)
	}
	return nil
}
