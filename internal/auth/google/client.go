// Package google verifies Google-issued ID tokens for federated login.
//
// The client discovers Google's OpenID configuration once at startup and
// caches the JWKS signing keys, so per-request verification is a local
// signature check unless the key set has rotated. Configuration must be
// complete before a client exists; a client that exists is fully
// initialized.
package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Issuer is Google's OIDC issuer. Tokens may carry it with or without
// the scheme prefix, and both are accepted.
const Issuer = "https://accounts.google.com"

// Payload is the verified identity extracted from a Google ID token.
type Payload struct {
	// Subject is Google's stable identifier for the user.
	Subject string

	// Email is the account email.
	Email string

	// EmailVerified indicates whether Google has verified the email.
	EmailVerified bool

	// GivenName is the user's first name (may be empty).
	GivenName string

	// FamilyName is the user's last name (may be empty).
	FamilyName string
}

// Client verifies Google ID tokens against Google's published keys.
// It holds no mutable state beyond the key cache and is safe for
// unlimited concurrent use.
type Client struct {
	issuer   string
	clientID string
	http     *http.Client
	jwks     *jwksCache
}

// NewClient performs OIDC discovery and returns a ready verifier.
// It fails when the client credentials are absent or discovery fails.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("google: %w", err)
	}

	c := &Client{
		issuer:   strings.TrimRight(cfg.Issuer, "/"),
		clientID: cfg.ClientID,
		http:     &http.Client{Timeout: cfg.HTTPTimeout},
	}

	if err := c.discover(ctx); err != nil {
		return nil, fmt.Errorf("google: discovery failed for %s: %w", c.issuer, err)
	}
	return c, nil
}

// VerifyIDToken validates a raw ID token and returns the identity it
// attests. It checks structure, signature, issuer, audience, expiry,
// and that the payload carries a usable subject and email. Verification
// is all-or-nothing.
func (c *Client) VerifyIDToken(ctx context.Context, raw string) (*Payload, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, errors.New("google: malformed token, expected 3 segments")
	}

	header, err := decodeSegment(parts[0])
	if err != nil {
		return nil, fmt.Errorf("google: decode header: %w", err)
	}
	alg, _ := header["alg"].(string)
	kid, _ := header["kid"].(string)
	if alg != "RS256" {
		return nil, fmt.Errorf("google: unsupported signing algorithm: %s", alg)
	}

	key, err := c.jwks.signingKey(ctx, c.http, kid)
	if err != nil {
		return nil, fmt.Errorf("google: get signing key: %w", err)
	}
	if err := verifyRS256(parts[0]+"."+parts[1], parts[2], key); err != nil {
		return nil, fmt.Errorf("google: verify signature: %w", err)
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("google: decode payload: %w", err)
	}
	if err := c.validateClaims(payload); err != nil {
		return nil, err
	}

	p := &Payload{
		Subject:       getString(payload, "sub"),
		Email:         getString(payload, "email"),
		EmailVerified: getBool(payload, "email_verified"),
		GivenName:     getString(payload, "given_name"),
		FamilyName:    getString(payload, "family_name"),
	}
	if p.Subject == "" {
		return nil, errors.New("google: token missing subject")
	}
	if p.Email == "" {
		return nil, errors.New("google: token missing email")
	}
	return p, nil
}

func (c *Client) validateClaims(payload map[string]interface{}) error {
	iss := getString(payload, "iss")
	if iss != c.issuer && "https://"+iss != c.issuer {
		return fmt.Errorf("google: issuer mismatch: got %q, expected %q", iss, c.issuer)
	}

	if !containsString(getAudience(payload), c.clientID) {
		return errors.New("google: audience mismatch")
	}

	exp, ok := getFloat64(payload, "exp")
	if !ok {
		return errors.New("google: token missing expiry")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return errors.New("google: token has expired")
	}
	return nil
}

// --- Discovery ---

type discoveryDoc struct {
	Issuer  string `json:"issuer"`
	JWKSUri string `json:"jwks_uri"`
}

func (c *Client) discover(ctx context.Context) error {
	wellKnown := c.issuer + "/.well-known/openid-configuration"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wellKnown, http.NoBody)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck // Error on close is safe to ignore for read operations

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("discovery returned %d: %s", resp.StatusCode, string(body))
	}

	var doc discoveryDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return fmt.Errorf("decode discovery document: %w", err)
	}
	if doc.JWKSUri == "" {
		return errors.New("discovery document missing jwks_uri")
	}

	c.jwks = newJWKSCache(doc.JWKSUri, jwksCacheTTL)
	return nil
}

// --- Claim helpers ---

func decodeSegment(seg string) (map[string]interface{}, error) {
	data, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func getString(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

func getBool(m map[string]interface{}, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func getFloat64(m map[string]interface{}, key string) (float64, bool) {
	v, ok := m[key].(float64)
	return v, ok
}

func getAudience(m map[string]interface{}) []string {
	switch v := m["aud"].(type) {
	case string:
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, a := range v {
			if s, ok := a.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
