package authctx

import (
	"context"
	"testing"

	"github.com/trendtrails/server/internal/auth/token"
)

func TestSetGet(t *testing.T) {
	claims := &token.AccessClaims{Email: "a@b.com", FullName: "Ada"}
	ctx := Set(context.Background(), claims)

	got, ok := Get(ctx)
	if !ok {
		t.Fatal("Get returned false after Set")
	}
	if got != claims {
		t.Error("Get returned different claims")
	}
}

func TestGetMissing(t *testing.T) {
	if _, ok := Get(context.Background()); ok {
		t.Error("Get returned true on empty context")
	}
	if _, err := GetOrError(context.Background()); err != ErrNoClaims {
		t.Errorf("GetOrError error = %v, want ErrNoClaims", err)
	}
}

func TestMustGetPanicsWhenMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet did not panic on empty context")
		}
	}()
	MustGet(context.Background())
}
