package mail

import (
	"strings"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{Host: "smtp.example.com", From: "no-reply@example.com", ResetPasswordURL: "https://example.com/reset"}
	cfg.ApplyDefaults()

	if cfg.Port != 587 {
		t.Errorf("Port = %d, want 587", cfg.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing host", Config{Port: 587, From: "a@b.c", ResetPasswordURL: "https://x"}},
		{"missing from", Config{Host: "h", Port: 587, ResetPasswordURL: "https://x"}},
		{"missing reset url", Config{Host: "h", Port: 587, From: "a@b.c"}},
		{"bad port", Config{Host: "h", Port: 70000, From: "a@b.c", ResetPasswordURL: "https://x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestRenderWelcomeEscapesName(t *testing.T) {
	body, err := renderWelcome("<script>x</script>")
	if err != nil {
		t.Fatalf("renderWelcome: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("user-provided name was not escaped")
	}
}

func TestRenderPasswordResetIncludesLink(t *testing.T) {
	body, err := renderPasswordReset("Ada", "https://example.com/reset-password?email=ada%40example.com")
	if err != nil {
		t.Fatalf("renderPasswordReset: %v", err)
	}
	if !strings.Contains(body, "https://example.com/reset-password") {
		t.Errorf("reset link missing from body: %s", body)
	}
	if !strings.Contains(body, "Ada") {
		t.Error("recipient name missing from body")
	}
}
