package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/logger"
)

// SMTPNotifier sends notification email through an SMTP relay.
type SMTPNotifier struct {
	cfg    Config
	client *gomail.Client
	log    *logger.Logger
}

// NewSMTPNotifier creates a notifier backed by the configured SMTP
// server. The connection is established lazily on first send.
func NewSMTPNotifier(cfg Config, log *logger.Logger) (*SMTPNotifier, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mail: %w", err)
	}

	opts := []gomail.Option{gomail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail: client: %w", err)
	}

	return &SMTPNotifier{cfg: cfg, client: client, log: log.WithComponent("mail")}, nil
}

// SendWelcome greets a freshly registered user.
func (n *SMTPNotifier) SendWelcome(ctx context.Context, email, fullName string) error {
	body, err := renderWelcome(fullName)
	if err != nil {
		return errors.NotificationFailed("welcome", err)
	}
	if err := n.send(ctx, email, "Welcome to Trend Trails!", body); err != nil {
		return errors.NotificationFailed("welcome", err)
	}
	n.log.Info("Welcome email sent", map[string]interface{}{"to": email})
	return nil
}

// SendPasswordReset mails the given reset link.
func (n *SMTPNotifier) SendPasswordReset(ctx context.Context, email, fullName, resetURL string) error {
	body, err := renderPasswordReset(fullName, resetURL)
	if err != nil {
		return errors.NotificationFailed("password reset", err)
	}
	if err := n.send(ctx, email, "Reset your Trend Trails password", body); err != nil {
		return errors.NotificationFailed("password reset", err)
	}
	n.log.Info("Password reset email sent", map[string]interface{}{"to": email})
	return nil
}

func (n *SMTPNotifier) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	return n.client.DialAndSendWithContext(ctx, msg)
}
