package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates application settings that may be sourced from
// environment variables.
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Export ExportConfig `mapstructure:"export"`
	Photo  PhotoConfig  `mapstructure:"photo"`
}

// APIConfig contains HTTP server settings.
type APIConfig struct {
	Port int `mapstructure:"port"`
}

// ExportConfig contains headless-browser rendering settings.
type ExportConfig struct {
	// BrowserBin overrides Chromium discovery when set.
	BrowserBin string `mapstructure:"browser_bin"`
	// SettleMS is the fixed delay between page load and capture.
	SettleMS int `mapstructure:"settle_ms"`
}

// PhotoConfig contains photo upload settings.
type PhotoConfig struct {
	// MaxBytes bounds an uploaded photo's size.
	MaxBytes int64 `mapstructure:"max_bytes"`
	// ClamdAddr enables virus scanning of uploads when set.
	ClamdAddr string `mapstructure:"clamd_addr"`
}

// Settle returns the capture settle delay as a duration.
func (e ExportConfig) Settle() time.Duration {
	return time.Duration(e.SettleMS) * time.Millisecond
}

// Load reads configuration solely from environment variables (with
// optional defaults).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if err := bindEnv(v); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad wraps Load and panics on failure.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 8080)
	v.SetDefault("export.settle_ms", 300)
	v.SetDefault("photo.max_bytes", 5*1024*1024)
}

func bindEnv(v *viper.Viper) error {
	mappings := map[string]string{
		"api.port":           "API_PORT",
		"export.browser_bin": "BROWSER_BIN",
		"export.settle_ms":   "EXPORT_SETTLE_MS",
		"photo.max_bytes":    "PHOTO_MAX_BYTES",
		"photo.clamd_addr":   "CLAMD_ADDR",
	}

	for key, env := range mappings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s to %s: %w", key, env, err)
		}
	}

	return nil
}

func validate(cfg Config) error {
	if cfg.API.Port <= 0 {
		return errors.New("api port must be positive")
	}
	if cfg.Export.SettleMS < 0 {
		return errors.New("export settle delay must not be negative")
	}
	if cfg.Photo.MaxBytes <= 0 {
		return errors.New("photo max bytes must be positive")
	}
	return nil
}
