// Package mail sends transactional email: the welcome message after
// registration and the password-reset link. Sending is best-effort from
// the platform's point of view but failures are surfaced to callers so
// they can decide whether the triggering operation should fail.
package mail

import (
	"context"

	"github.com/trendtrails/server/internal/logger"
)

// Notifier sends user-facing notification email.
type Notifier interface {
	// SendWelcome greets a freshly registered user.
	SendWelcome(ctx context.Context, email, fullName string) error

	// SendPasswordReset mails the given reset link.
	SendPasswordReset(ctx context.Context, email, fullName, resetURL string) error
}

// LogNotifier is a Notifier that only logs. Used in development and in
// tests, where no SMTP server is available.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a log-only notifier.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.WithComponent("mail")}
}

func (n *LogNotifier) SendWelcome(ctx context.Context, email, fullName string) error {
	n.log.Info("Welcome email suppressed (log-only notifier)", map[string]interface{}{
		"to": email,
	})
	return nil
}

func (n *LogNotifier) SendPasswordReset(ctx context.Context, email, fullName, resetURL string) error {
	n.log.Info("Password reset email suppressed (log-only notifier)", map[string]interface{}{
		"to": email,
	})
	return nil
}
