// Package config loads service configuration from the process environment.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds server configuration
type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	// Generation service settings. APIKey is the one required credential;
	// the server refuses to start without it.
	APIKey     string
	GenModel   string
	GenBaseURL string
	GenTimeout time.Duration

	MetricsEnabled bool
}

// ErrMissingAPIKey is returned when the generation-service credential is absent.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is required")

// Load reads configuration from environment variables. Service-owned settings
// use the NEUROX_ prefix; the generation credential keeps its upstream name.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NEUROX")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("gen_model", "gemini-1.5-flash")
	v.SetDefault("gen_base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gen_timeout_seconds", 15)
	v.SetDefault("metrics_enabled", true)

	// The credential is intentionally read without the service prefix so the
	// standard GEMINI_API_KEY variable works unchanged.
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	cfg := Config{
		Port:           v.GetString("port"),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
		APIKey:         apiKey,
		GenModel:       v.GetString("gen_model"),
		GenBaseURL:     strings.TrimRight(v.GetString("gen_base_url"), "/"),
		GenTimeout:     time.Duration(v.GetInt("gen_timeout_seconds")) * time.Second,
		MetricsEnabled: v.GetBool("metrics_enabled"),
	}

	if cfg.GenTimeout <= 0 {
		cfg.GenTimeout = 15 * time.Second
	}

	return cfg, nil
}
