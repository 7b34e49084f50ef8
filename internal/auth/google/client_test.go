package google

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// fakeProvider serves an OIDC discovery document and a JWKS for tests.
type fakeProvider struct {
	t      *testing.T
	key    *rsa.PrivateKey
	kid    string
	server *httptest.Server
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	fp := &fakeProvider{t: t, key: key, kid: "test-key-1"}

	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"issuer":   fp.server.URL,
			"jwks_uri": fp.server.URL + "/jwks",
		})
	})
	mux.HandleFunc("/jwks", func(w http.ResponseWriter, _ *http.Request) {
		pub := &fp.key.PublicKey
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]string{{
				"kty": "RSA",
				"kid": fp.kid,
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
			}},
		})
	})

	fp.server = httptest.NewServer(mux)
	t.Cleanup(fp.server.Close)
	return fp
}

func (fp *fakeProvider) client(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(context.Background(), Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		Issuer:       fp.server.URL,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func (fp *fakeProvider) sign(claims jwt.MapClaims) string {
	fp.t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = fp.kid
	raw, err := tok.SignedString(fp.key)
	if err != nil {
		fp.t.Fatalf("sign token: %v", err)
	}
	return raw
}

func (fp *fakeProvider) validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":            fp.server.URL,
		"aud":            "test-client",
		"sub":            "google-subject-1",
		"email":          "ada@example.com",
		"email_verified": true,
		"given_name":     "Ada",
		"family_name":    "Lovelace",
		"exp":            time.Now().Add(time.Hour).Unix(),
		"iat":            time.Now().Unix(),
	}
}

func TestVerifyIDToken(t *testing.T) {
	fp := newFakeProvider(t)
	c := fp.client(t)

	payload, err := c.VerifyIDToken(context.Background(), fp.sign(fp.validClaims()))
	if err != nil {
		t.Fatalf("VerifyIDToken: %v", err)
	}
	if payload.Subject != "google-subject-1" {
		t.Errorf("subject = %q", payload.Subject)
	}
	if payload.Email != "ada@example.com" {
		t.Errorf("email = %q", payload.Email)
	}
	if payload.GivenName != "Ada" || payload.FamilyName != "Lovelace" {
		t.Errorf("name = %q %q", payload.GivenName, payload.FamilyName)
	}
	if !payload.EmailVerified {
		t.Error("email_verified not carried through")
	}
}

func TestVerifyIDTokenRejectsExpired(t *testing.T) {
	fp := newFakeProvider(t)
	c := fp.client(t)

	claims := fp.validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	if _, err := c.VerifyIDToken(context.Background(), fp.sign(claims)); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestVerifyIDTokenRejectsAudienceMismatch(t *testing.T) {
	fp := newFakeProvider(t)
	c := fp.client(t)

	claims := fp.validClaims()
	claims["aud"] = "someone-else"
	if _, err := c.VerifyIDToken(context.Background(), fp.sign(claims)); err == nil {
		t.Error("expected error for audience mismatch")
	}
}

func TestVerifyIDTokenRejectsIssuerMismatch(t *testing.T) {
	fp := newFakeProvider(t)
	c := fp.client(t)

	claims := fp.validClaims()
	claims["iss"] = "https://evil.example.com"
	if _, err := c.VerifyIDToken(context.Background(), fp.sign(claims)); err == nil {
		t.Error("expected error for issuer mismatch")
	}
}

func TestVerifyIDTokenRequiresSubjectAndEmail(t *testing.T) {
	fp := newFakeProvider(t)
	c := fp.client(t)

	noSub := fp.validClaims()
	delete(noSub, "sub")
	if _, err := c.VerifyIDToken(context.Background(), fp.sign(noSub)); err == nil {
		t.Error("expected error for missing subject")
	}

	noEmail := fp.validClaims()
	delete(noEmail, "email")
	if _, err := c.VerifyIDToken(context.Background(), fp.sign(noEmail)); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestVerifyIDTokenRejectsForeignSignature(t *testing.T) {
	fp := newFakeProvider(t)
	c := fp.client(t)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, fp.validClaims())
	tok.Header["kid"] = fp.kid
	raw, err := tok.SignedString(otherKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := c.VerifyIDToken(context.Background(), raw); err == nil {
		t.Error("expected error for signature from a foreign key")
	}
}

func TestVerifyIDTokenRejectsMalformed(t *testing.T) {
	fp := newFakeProvider(t)
	c := fp.client(t)

	for _, raw := range []string{"", "one", "a.b", "!!!.???.###"} {
		if _, err := c.VerifyIDToken(context.Background(), raw); err == nil {
			t.Errorf("VerifyIDToken(%q) succeeded", raw)
		}
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(context.Background(), Config{ClientSecret: "x"}); err == nil {
		t.Error("expected error for missing client ID")
	}
	if _, err := NewClient(context.Background(), Config{ClientID: "x"}); err == nil {
		t.Error("expected error for missing client secret")
	}
}
