// Package config provides configuration loading for the WasteNaut document service.
package config

import (
	"fmt"
	"time"

	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "WASTENAUT_"

// Config holds the application configuration.
type Config struct {
	Brand  domain.Brand `koanf:"brand"`
	PDF    PDF          `koanf:"pdf"`
	Server Server       `koanf:"server"`
}

// PDF holds document rendering options.
type PDF struct {
	Compress bool   `koanf:"compress"`
	Author   string `koanf:"author"`
}

// Server holds HTTP server options.
type Server struct {
	Addr           string        `koanf:"addr"`
	DebugRoutes    bool          `koanf:"debugroutes"`
	AllowedOrigins []string      `koanf:"allowedorigins"`
	ReadTimeout    time.Duration `koanf:"readtimeout"`
	WriteTimeout   time.Duration `koanf:"writetimeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Brand: domain.DefaultBrand(),
		PDF: PDF{
			Compress: true,
			Author:   "WasteNaut",
		},
		Server: Server{
			Addr:           ":8080",
			DebugRoutes:    true,
			AllowedOrigins: []string{"*"},
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   30 * time.Second,
		},
	}
}

// Load returns the application configuration using go-libs config-loader.
// Values come from the defaults, then the optional file at path, then the environment.
func Load(path string) (*Config, error) {
	var (
		cfg Config
		err error
	)

	if path == "" {
		cfg, err = configloader.NewConfigLoader(
			configloader.WithDefaults(Default()),
			configloader.WithEnv[Config](EnvPrefix),
		).Load()
	} else {
		cfg, err = configloader.NewConfigLoader(
			configloader.WithDefaults(Default()),
			configloader.WithFile[Config](path),
			configloader.WithEnv[Config](EnvPrefix),
		).Load()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &cfg, nil
}
