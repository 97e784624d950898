package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultBaseURL is the hosted API origin used when PT_BASE_URL is unset.
const DefaultBaseURL = "https://customer-rest-service-frontend-personaltrainer.2.rahtiapp.fi/api"

// DefaultTimezone is the domain's operating region. All dates are
// rendered in this zone unless configured otherwise.
const DefaultTimezone = "Europe/Helsinki"

// Config holds environment-provided settings. Variables are read with
// the PT prefix: PT_BASE_URL, PT_TIMEZONE, PT_HTTP_TIMEOUT.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"https://customer-rest-service-frontend-personaltrainer.2.rahtiapp.fi/api"`
	Timezone    string        `envconfig:"TIMEZONE" default:"Europe/Helsinki"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
}

// ConfigFromEnv parses the PT_* environment variables.
func ConfigFromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("pt", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	// envconfig only applies defaults when a variable is fully unset, but
	// PT_BASE_URL="" must still mean "use the hosted API".
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	return &cfg, nil
}
