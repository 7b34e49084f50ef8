// Package auth orchestrates sign-in, registration, federated login, and
// the password-reset flow. It owns no persistence of its own: identities
// live in the user directory, which it reaches through the Directory
// interface.
package auth

import (
	"context"
	"net/url"
	"strings"

	"github.com/trendtrails/server/internal/auth/google"
	"github.com/trendtrails/server/internal/auth/password"
	"github.com/trendtrails/server/internal/auth/token"
	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/logger"
	"github.com/trendtrails/server/internal/mail"
	"github.com/trendtrails/server/internal/user"
)

// ForgotPasswordConfirmation is returned from ForgotPassword regardless
// of delivery details, so the response leaks nothing about the mailbox.
const ForgotPasswordConfirmation = "Password reset instructions have been sent to your email."

// Directory is the slice of the user directory the auth flows need.
// *user.Service satisfies it.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*user.User, error)
	Create(ctx context.Context, in user.CreateInput) (*user.User, error)
	Update(ctx context.Context, id int64, in user.UpdateInput) (*user.User, error)
}

// GoogleVerifier verifies a Google ID token and extracts its payload.
// *google.Client satisfies it.
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, raw string) (*google.Payload, error)
}

// LoginResult wraps the issued access token.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
}

// RegisterInput carries the fields for local registration.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// Service implements the authentication flows.
type Service struct {
	directory Directory
	hasher    password.Hasher
	tokens    *token.Service
	google    GoogleVerifier
	notifier  mail.Notifier
	resetURL  string
	log       *logger.Logger
}

// NewService creates the auth service. google may be nil when federation
// is disabled; GoogleLogin then always rejects.
func NewService(
	directory Directory,
	hasher password.Hasher,
	tokens *token.Service,
	googleVerifier GoogleVerifier,
	notifier mail.Notifier,
	resetURL string,
	log *logger.Logger,
) *Service {
	return &Service{
		directory: directory,
		hasher:    hasher,
		tokens:    tokens,
		google:    googleVerifier,
		notifier:  notifier,
		resetURL:  resetURL,
		log:       log.WithComponent("auth"),
	}
}

// Login verifies the password and issues an access token. An unknown
// email yields NotFound; a wrong password yields InvalidCredentials.
// An account without a local password can never pass the comparison.
func (s *Service) Login(ctx context.Context, email, pwd string) (*LoginResult, error) {
	u, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Compare(pwd, u.StoredHash()) {
		return nil, errors.InvalidCredentials()
	}

	raw, err := s.tokens.Issue(u.ID, u.Email, u.FullName)
	if err != nil {
		return nil, errors.Internal(err)
	}

	s.log.Info("User logged in", map[string]interface{}{"user_id": u.ID})
	return &LoginResult{AccessToken: raw}, nil
}

// Register creates a local account, sends the welcome email, and returns
// the issued access token. A duplicate email yields AlreadyExists; a
// welcome-mail failure fails the whole operation.
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, error) {
	u, err := s.directory.Create(ctx, user.CreateInput{
		FullName: in.FullName,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return "", err
	}

	if err := s.notifier.SendWelcome(ctx, u.Email, u.FullName); err != nil {
		return "", err
	}

	raw, err := s.tokens.Issue(u.ID, u.Email, u.FullName)
	if err != nil {
		return "", errors.Internal(err)
	}

	s.log.Info("User registered", map[string]interface{}{"user_id": u.ID})
	return raw, nil
}

// GoogleLogin verifies the Google ID token and signs in the bound
// account, creating one on first contact. Created accounts carry no
// local password; they sign in through federation only.
func (s *Service) GoogleLogin(ctx context.Context, idToken string) (*LoginResult, error) {
	if s.google == nil {
		return nil, errors.InvalidExternalToken("Google")
	}

	payload, err := s.google.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.InvalidExternalToken("Google").WithCause(err)
	}

	u, err := s.directory.FindByGoogleID(ctx, payload.Subject)
	switch {
	case err == nil:
	case errors.HasCode(err, errors.ErrCodeNotFound):
		fullName := strings.TrimSpace(payload.GivenName + " " + payload.FamilyName)
		u, err = s.directory.Create(ctx, user.CreateInput{
			FullName: fullName,
			Email:    payload.Email,
			GoogleID: payload.Subject,
		})
		if err != nil {
			return nil, errors.ExternalRegistrationFailed("Google", err)
		}
		s.log.Info("Federated account created", map[string]interface{}{"user_id": u.ID})
	default:
		return nil, errors.ExternalRegistrationFailed("Google", err)
	}

	raw, err := s.tokens.Issue(u.ID, u.Email, u.FullName)
	if err != nil {
		return nil, errors.Internal(err)
	}

	s.log.Info("User logged in via Google", map[string]interface{}{"user_id": u.ID})
	return &LoginResult{AccessToken: raw}, nil
}

// ForgotPassword mails a reset link to the account's address and returns
// a fixed confirmation string. An unknown email yields NotFound.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	u, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	link := s.resetURL + "?email=" + url.QueryEscape(u.Email)
	if err := s.notifier.SendPasswordReset(ctx, u.Email, u.FullName, link); err != nil {
		return "", err
	}

	s.log.Info("Password reset requested", map[string]interface{}{"user_id": u.ID})
	return ForgotPasswordConfirmation, nil
}

// ResetPassword replaces the account's password and returns the updated
// identity. The new password is rejected when blank after trimming; the
// directory re-hashes unconditionally, even when the new password equals
// the old one.
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) (*user.User, error) {
	if strings.TrimSpace(newPassword) == "" {
		return nil, errors.Validation("New password must not be blank.")
	}

	u, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	updated, err := s.directory.Update(ctx, u.ID, user.UpdateInput{Password: &newPassword})
	if err != nil {
		return nil, err
	}

	s.log.Info("Password reset completed", map[string]interface{}{"user_id": u.ID})
	return updated, nil
}
