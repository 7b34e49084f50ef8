package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envBindings maps flat environment variable names onto nested config
// keys. The names mirror the deployment environment of the original
// platform so existing .env files keep working.
var envBindings = map[string]string{
	"APP_HOST":             "server.host",
	"APP_PORT":             "server.port",
	"DATABASE_DRIVER":      "database.driver",
	"DATABASE_DSN":         "database.dsn",
	"JWT_SECRET":           "jwt.secret",
	"JWT_ACCESS_TOKEN_TTL": "jwt.access_token_ttl",
	"JWT_TOKEN_AUDIENCE":   "jwt.token_audience",
	"JWT_TOKEN_ISSUER":     "jwt.token_issuer",
	"GOOGLE_CLIENT_ID":     "google.client_id",
	"GOOGLE_CLIENT_SECRET": "google.client_secret",
	"MAIL_HOST":            "smtp.host",
	"MAIL_PORT":            "smtp.port",
	"SMTP_USERNAME":        "smtp.username",
	"SMTP_PASSWORD":        "smtp.password",
	"MAIL_FROM":            "smtp.from",
	"RESET_PASSWORD_URL":   "smtp.reset_password_url",
	"LOG_LEVEL":            "log.level",
	"LOG_FORMAT":           "log.format",
	"LOG_OUTPUT":           "log.output",
}

// Load reads configuration from an optional .env file and the process
// environment, applies defaults, and validates the result.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				return nil, fmt.Errorf("load env file %s: %w", f, err)
			}
		}
	}
	// A bare .env next to the binary is picked up when nothing explicit
	// was given, matching how the deployment has always been configured.
	if len(envFiles) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			_ = godotenv.Load(".env")
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for env, key := range envBindings {
		if val, ok := os.LookupEnv(env); ok {
			v.Set(key, val)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
