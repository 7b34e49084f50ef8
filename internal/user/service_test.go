package user

import (
	"context"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/trendtrails/server/internal/auth/password"
	"github.com/trendtrails/server/internal/database"
	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	log := logger.New(logger.Config{Level: "error", Format: "console"}, "test")
	db, err := database.Open(database.Config{
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "users.db"),
	}, log)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hasher := password.NewBcryptHasher(password.WithCost(bcrypt.MinCost))
	return NewService(NewStore(db.Gorm), hasher, log)
}

func TestCreateHashesPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Error("created user has no id")
	}
	if u.Role != RoleUser {
		t.Errorf("Role = %q, want %q", u.Role, RoleUser)
	}
	if u.PasswordHash == nil || *u.PasswordHash == "correct horse battery" {
		t.Error("password was not hashed before persisting")
	}
	if !svc.hasher.Compare("correct horse battery", u.StoredHash()) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestCreateWithoutPasswordStoresNoHash(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.Create(context.Background(), CreateInput{
		FullName: "Grace Hopper",
		Email:    "grace@example.com",
		GoogleID: "google-sub-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.PasswordHash != nil {
		t.Error("federation-only account should have no password hash")
	}
	if u.StoredHash() != "" {
		t.Errorf("StoredHash() = %q, want empty", u.StoredHash())
	}
}

func TestCreateDuplicateEmailConflicts(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	in := CreateInput{FullName: "Ada", Email: "ada@example.com", Password: "pw123456"}
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := svc.Create(ctx, in)
	if !errors.HasCode(err, errors.ErrCodeAlreadyExists) {
		t.Errorf("duplicate Create error = %v, want ALREADY_EXISTS", err)
	}
}

func TestFindByEmailIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{FullName: "Ada", Email: "Ada@Example.COM", Password: "pw123456"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	u, err := svc.FindByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if u.Email != "ada@example.com" {
		t.Errorf("stored email = %q, want lowercased", u.Email)
	}
}

func TestFindByEmailNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.FindByEmail(context.Background(), "nobody@example.com")
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestFindByGoogleID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{FullName: "Grace", Email: "grace@example.com", GoogleID: "sub-42"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	u, err := svc.FindByGoogleID(ctx, "sub-42")
	if err != nil {
		t.Fatalf("FindByGoogleID: %v", err)
	}
	if u.ID != created.ID {
		t.Errorf("found id %d, want %d", u.ID, created.ID)
	}

	if _, err := svc.FindByGoogleID(ctx, "unknown-sub"); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown subject error = %v, want NOT_FOUND", err)
	}
}

func TestUpdateRehashesPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{FullName: "Ada", Email: "ada@example.com", Password: "old-password"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	oldHash := u.StoredHash()

	newPassword := "new-password"
	updated, err := svc.Update(ctx, u.ID, UpdateInput{Password: &newPassword})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.StoredHash() == oldHash {
		t.Error("password hash unchanged after update")
	}
	if !svc.hasher.Compare("new-password", updated.StoredHash()) {
		t.Error("updated hash does not verify against the new password")
	}
	if svc.hasher.Compare("old-password", updated.StoredHash()) {
		t.Error("old password still verifies after update")
	}
}

func TestUpdateWithoutPasswordKeepsHash(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{FullName: "Ada", Email: "ada@example.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	oldHash := u.StoredHash()

	name := "Ada King"
	updated, err := svc.Update(ctx, u.ID, UpdateInput{FullName: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.FullName != "Ada King" {
		t.Errorf("FullName = %q, want %q", updated.FullName, "Ada King")
	}
	if updated.StoredHash() != oldHash {
		t.Error("hash changed although no password was supplied")
	}
}

func TestUpdateMissingUser(t *testing.T) {
	svc := newTestService(t)

	name := "Nobody"
	_, err := svc.Update(context.Background(), 999, UpdateInput{FullName: &name})
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	u, err := svc.Create(ctx, CreateInput{FullName: "Ada", Email: "ada@example.com", Password: "pw123456"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.FindByID(ctx, u.ID); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("after delete FindByID error = %v, want NOT_FOUND", err)
	}

	if err := svc.Delete(ctx, u.ID); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("double delete error = %v, want NOT_FOUND", err)
	}
}
