package token

import (
	"errors"
	"time"
)

// Config configures access-token signing and verification. All values
// are fixed per deployment and read-only after startup.
type Config struct {
	// Secret is the HMAC signing key (required).
	Secret string

	// Issuer is the "iss" claim, matched exactly on verification (required).
	Issuer string

	// Audience is the "aud" claim, matched exactly on verification (required).
	Audience string

	// TTL is the access-token lifetime (default: 30 days).
	TTL time.Duration
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.TTL == 0 {
		c.TTL = 30 * 24 * time.Hour
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return errors.New("signing secret is required")
	}
	if c.Issuer == "" {
		return errors.New("issuer is required")
	}
	if c.Audience == "" {
		return errors.New("audience is required")
	}
	return nil
}
