package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	JWTSecret     string `envconfig:"JWT_SECRET" default:"ceremonia-dev-secret"`
	TokenTTLHours int    `envconfig:"TOKEN_TTL_HOURS" default:"24"`

	// PaymentSuccessRate is the probability that a simulated payment
	// succeeds. Tests pin it to 0 or 1 for deterministic branches.
	PaymentSuccessRate float64 `envconfig:"PAYMENT_SUCCESS_RATE" default:"0.95"`

	// MediaProcessingDelayMS delays the media upload response to mimic
	// processing time. Zero disables it.
	MediaProcessingDelayMS int `envconfig:"MEDIA_PROCESSING_DELAY_MS" default:"1500"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TokenTTL returns the configured token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// MediaProcessingDelay returns the configured upload delay as a duration.
func (c *Config) MediaProcessingDelay() time.Duration {
	return time.Duration(c.MediaProcessingDelayMS) * time.Millisecond
}
