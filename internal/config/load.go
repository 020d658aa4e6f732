package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults applied before any file or environment override.
const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8080
	DefaultLogLevel     = "info"
	DefaultDriver       = "sqlite"
	DefaultDatabasePath = "todo.db"
	DefaultMaxOpenConns = 8
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// With nothing set the server listens on 0.0.0.0:8080 and stores its data in todo.db.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("database.driver", DefaultDriver)
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", DefaultMaxOpenConns)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
