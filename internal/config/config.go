// Package config loads and validates the process-wide configuration.
// Values come from a .env file (when present) and the environment; they
// are read once at startup and treated as read-only afterwards. Missing
// required values are fatal: the process must not serve traffic with a
// partially configured auth stack.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/trendtrails/server/internal/database"
	"github.com/trendtrails/server/internal/logger"
	"github.com/trendtrails/server/internal/mail"
)

// Config is the root configuration for the server.
type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Database database.Config `mapstructure:"database"`
	JWT      JWTConfig       `mapstructure:"jwt"`
	Google   GoogleConfig    `mapstructure:"google"`
	SMTP     mail.Config     `mapstructure:"smtp"`
	Log      logger.Config   `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // seconds
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *ServerConfig) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 15
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60
	}
}

// Validate checks the configuration for invalid values.
func (c *ServerConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535 (got: %d)", c.Port)
	}
	return nil
}

// JWTConfig holds access-token signing settings.
type JWTConfig struct {
	// Secret is the HMAC signing key (required).
	Secret string `mapstructure:"secret"`

	// AccessTokenTTLDays is the access-token lifetime in days (default: 30).
	AccessTokenTTLDays int `mapstructure:"access_token_ttl"`

	// Audience is the required "aud" claim (required).
	Audience string `mapstructure:"token_audience"`

	// Issuer is the required "iss" claim (required).
	Issuer string `mapstructure:"token_issuer"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *JWTConfig) ApplyDefaults() {
	if c.AccessTokenTTLDays == 0 {
		c.AccessTokenTTLDays = 30
	}
}

// Validate checks required fields.
func (c *JWTConfig) Validate() error {
	if c.Secret == "" {
		return errors.New("jwt.secret is required")
	}
	if c.Audience == "" {
		return errors.New("jwt.token_audience is required")
	}
	if c.Issuer == "" {
		return errors.New("jwt.token_issuer is required")
	}
	if c.AccessTokenTTLDays < 0 {
		return fmt.Errorf("jwt.access_token_ttl must be non-negative (got: %d)", c.AccessTokenTTLDays)
	}
	return nil
}

// TTL returns the access-token lifetime as a duration.
func (c *JWTConfig) TTL() time.Duration {
	return time.Duration(c.AccessTokenTTLDays) * 24 * time.Hour
}

// GoogleConfig holds the OAuth client credentials for Google federation.
type GoogleConfig struct {
	// ClientID is the OAuth2 client ID; it is also the expected "aud"
	// claim of incoming Google ID tokens (required).
	ClientID string `mapstructure:"client_id"`

	// ClientSecret is the OAuth2 client secret (required).
	ClientSecret string `mapstructure:"client_secret"`
}

// Validate checks required fields.
func (c *GoogleConfig) Validate() error {
	if c.ClientID == "" {
		return errors.New("google.client_id is required")
	}
	if c.ClientSecret == "" {
		return errors.New("google.client_secret is required")
	}
	return nil
}

// ApplyDefaults fills defaults on every section.
func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.JWT.ApplyDefaults()
	c.SMTP.ApplyDefaults()
	c.Log.ApplyDefaults()
}

// Validate checks every section. The first failure is returned; a
// failure here aborts process startup.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.JWT.Validate(); err != nil {
		return err
	}
	if err := c.Google.Validate(); err != nil {
		return err
	}
	if err := c.SMTP.Validate(); err != nil {
		return err
	}
	return nil
}
