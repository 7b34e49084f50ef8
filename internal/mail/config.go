package mail

import (
	"errors"
	"fmt"
)

// Config holds SMTP settings for outbound notifications.
type Config struct {
	// Host is the SMTP server hostname (required).
	Host string `mapstructure:"host"`

	// Port is the SMTP server port (default: 587).
	Port int `mapstructure:"port"`

	// Username authenticates against the SMTP server.
	Username string `mapstructure:"username"`

	// Password authenticates against the SMTP server.
	Password string `mapstructure:"password"`

	// From is the sender address on every outbound message (required).
	From string `mapstructure:"from"`

	// ResetPasswordURL is the frontend page the reset email links to
	// (required). The reset token is appended as a query parameter.
	ResetPasswordURL string `mapstructure:"reset_password_url"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 587
	}
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("smtp.host is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("smtp.port must be between 1 and 65535 (got: %d)", c.Port)
	}
	if c.From == "" {
		return errors.New("smtp.from is required")
	}
	if c.ResetPasswordURL == "" {
		return errors.New("smtp.reset_password_url is required")
	}
	return nil
}
