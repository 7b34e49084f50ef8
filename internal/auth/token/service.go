// Package token issues and verifies the signed access tokens that carry
// a user's identity between requests. Tokens are compact HS256 JWTs;
// verification is all-or-nothing: no claim from an unverified token is
// ever trusted.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the payload of an issued access token.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// UserID returns the numeric identity id from the subject claim.
func (c *AccessClaims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token: non-numeric subject %q", c.Subject)
	}
	return id, nil
}

// Service signs and verifies access tokens. It is immutable after
// construction and safe for concurrent use.
type Service struct {
	cfg Config
}

// NewService creates a token service. It fails when the signing secret
// is absent; a process without a secret must not start.
func NewService(cfg Config) (*Service, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	return &Service{cfg: cfg}, nil
}

// Issue creates a signed access token for the given identity. The
// subject is the identity id; issuer, audience, and expiry come from
// configuration.
func (s *Service) Issue(userID int64, email, fullName string) (string, error) {
	now := time.Now()
	claims := &AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
		Email:    email,
		FullName: fullName,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify parses raw and validates its signature, issuer, audience, and
// expiry. Any failure (malformed structure, bad signature, expiry,
// issuer or audience mismatch) returns an error and no claims.
func (s *Service) Verify(raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("token: parse: %w", err)
	}
	if !tok.Valid {
		return nil, errors.New("token: invalid token")
	}
	return claims, nil
}

// keyFunc pins the signing method before handing out the verify key.
func (s *Service) keyFunc(tok *jwt.Token) (interface{}, error) {
	if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", tok.Method.Alg())
	}
	return []byte(s.cfg.Secret), nil
}
