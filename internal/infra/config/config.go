// Package config loads process configuration from the environment.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"mpmcp/internal/domain"
)

// Config is the full runtime configuration of the server. Credentials are
// required; everything else has a default.
type Config struct {
	Credentials domain.Credentials
	Verbose     bool

	TokenURL    string
	APIBaseURL  string
	DocsBaseURL string

	// MetricsAddr enables the Prometheus listener when non-empty.
	MetricsAddr string
}

func newEnvViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	// Explicit bindings so the canonical env names work regardless of
	// key casing rules.
	_ = v.BindEnv("client_id", "CLIENT_ID")
	_ = v.BindEnv("client_secret", "CLIENT_SECRET")
	_ = v.BindEnv("debug", "DEBUG")
	_ = v.BindEnv("metrics_addr", "METRICS_ADDR")
	_ = v.BindEnv("token_url", "MP_TOKEN_URL")
	_ = v.BindEnv("api_base_url", "MP_API_BASE_URL")
	_ = v.BindEnv("docs_base_url", "MP_DOCS_BASE_URL")
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("token_url", domain.DefaultTokenURL)
	v.SetDefault("api_base_url", domain.DefaultAPIBaseURL)
	v.SetDefault("docs_base_url", domain.DefaultDocsBaseURL)
}

// Load reads the environment and validates required values.
func Load() (Config, error) {
	v := newEnvViper()

	cfg := Config{
		Credentials: domain.Credentials{
			ClientID:     strings.TrimSpace(v.GetString("client_id")),
			ClientSecret: strings.TrimSpace(v.GetString("client_secret")),
		},
		Verbose:     isTruthy(v.GetString("debug")),
		TokenURL:    strings.TrimSpace(v.GetString("token_url")),
		APIBaseURL:  strings.TrimRight(strings.TrimSpace(v.GetString("api_base_url")), "/"),
		DocsBaseURL: strings.TrimRight(strings.TrimSpace(v.GetString("docs_base_url")), "/"),
		MetricsAddr: strings.TrimSpace(v.GetString("metrics_addr")),
	}

	if cfg.Credentials.ClientID == "" || cfg.Credentials.ClientSecret == "" {
		return Config{}, domain.E(domain.CodeFailedPrecond, "config.load",
			"CLIENT_ID and CLIENT_SECRET environment variables are required", nil)
	}
	return cfg, nil
}

func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
