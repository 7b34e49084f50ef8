package token

import (
	"strings"
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		Secret:   "test-secret",
		Issuer:   "trendtrails",
		Audience: "trendtrails-web",
		TTL:      time.Hour,
	}
}

func TestNewServiceRequiresSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Secret = ""
	if _, err := NewService(cfg); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc, err := NewService(testConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	raw, err := svc.Issue(42, "a@b.com", "Ada Lovelace")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if parts := strings.Split(raw, "."); len(parts) != 3 {
		t.Fatalf("expected compact three-part token, got %d parts", len(parts))
	}

	claims, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if id != 42 {
		t.Errorf("subject = %d, want 42", id)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.FullName != "Ada Lovelace" {
		t.Errorf("fullName = %q", claims.FullName)
	}
	if claims.Issuer != "trendtrails" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Error("expiry missing or already past")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.TTL = -time.Minute
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	raw, err := svc.Issue(1, "a@b.com", "A")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Verify(raw); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewService(testConfig())

	other := testConfig()
	other.Secret = "different-secret"
	verifier, _ := NewService(other)

	raw, err := issuer.Issue(1, "a@b.com", "A")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Verify(raw); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestVerifyRejectsIssuerAudienceMismatch(t *testing.T) {
	issuer, _ := NewService(testConfig())
	raw, err := issuer.Issue(1, "a@b.com", "A")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	badIssuer := testConfig()
	badIssuer.Issuer = "someone-else"
	v1, _ := NewService(badIssuer)
	if _, err := v1.Verify(raw); err == nil {
		t.Error("expected error for issuer mismatch")
	}

	badAudience := testConfig()
	badAudience.Audience = "other-app"
	v2, _ := NewService(badAudience)
	if _, err := v2.Verify(raw); err == nil {
		t.Error("expected error for audience mismatch")
	}
}

func TestVerifyRejectsMalformed(t *testing.T) {
	svc, _ := NewService(testConfig())

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Verify(raw); err == nil {
			t.Errorf("Verify(%q) succeeded for malformed token", raw)
		}
	}
}

func TestVerifyRejectsAlgNone(t *testing.T) {
	svc, _ := NewService(testConfig())

	// {"alg":"none","typ":"JWT"}.{"sub":"1"}. with empty signature
	raw := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiIxIn0."
	if _, err := svc.Verify(raw); err == nil {
		t.Error("unsigned token accepted")
	}
}
