package google

import (
	"errors"
	"time"
)

// Config configures the Google ID-token verifier.
type Config struct {
	// ClientID is the OAuth2 client ID and the expected "aud" claim (required).
	ClientID string

	// ClientSecret is the OAuth2 client secret (required).
	ClientSecret string

	// Issuer overrides the verification issuer. Tests point this at a
	// local server; production leaves it empty and gets Google.
	Issuer string

	// HTTPTimeout bounds discovery and JWKS requests (default: 10s).
	// The external provider gets no unbounded calls.
	HTTPTimeout time.Duration
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Issuer == "" {
		c.Issuer = Issuer
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = 10 * time.Second
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return errors.New("client ID is required")
	}
	if c.ClientSecret == "" {
		return errors.New("client secret is required")
	}
	return nil
}
