package user

import (
	"context"

	"github.com/trendtrails/server/internal/auth/password"
	"github.com/trendtrails/server/internal/database"
	"github.com/trendtrails/server/internal/errors"
	"github.com/trendtrails/server/internal/logger"
)

// CreateInput carries the fields for a new identity. Password and
// GoogleID are both optional, but at least one must be present for the
// resulting account to be signable-in.
type CreateInput struct {
	FullName string
	Email    string
	Password string
	GoogleID string
	Role     Role
}

// UpdateInput carries a partial profile update. Nil fields are left
// untouched. A non-nil Password is re-hashed unconditionally, even if
// it matches the current one.
type UpdateInput struct {
	FullName *string
	Email    *string
	Password *string
}

// Service implements the user directory operations. It owns password
// hashing on the write path so no caller can persist a plaintext
// password by accident.
type Service struct {
	store  *Store
	hasher password.Hasher
	log    *logger.Logger
}

// NewService creates a user service.
func NewService(store *Store, hasher password.Hasher, log *logger.Logger) *Service {
	return &Service{store: store, hasher: hasher, log: log.WithComponent("user")}
}

// FindByEmail returns the user with the given email, or NotFound.
func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, database.Translate(err, "user")
	}
	return u, nil
}

// FindByGoogleID returns the user bound to the given external subject
// id, or NotFound.
func (s *Service) FindByGoogleID(ctx context.Context, googleID string) (*User, error) {
	u, err := s.store.FindByGoogleID(ctx, googleID)
	if err != nil {
		return nil, database.Translate(err, "user")
	}
	return u, nil
}

// FindByID returns the user with the given id, or NotFound.
func (s *Service) FindByID(ctx context.Context, id int64) (*User, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, database.Translate(err, "user")
	}
	return u, nil
}

// Create registers a new identity. A duplicate email yields
// AlreadyExists. An empty password leaves the hash absent; such an
// account can only sign in through federation.
func (s *Service) Create(ctx context.Context, in CreateInput) (*User, error) {
	u := &User{
		FullName: in.FullName,
		Email:    in.Email,
		Role:     in.Role,
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	if in.GoogleID != "" {
		u.GoogleID = &in.GoogleID
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, errors.Internal(err)
		}
		u.PasswordHash = &hash
	}

	if err := s.store.Create(ctx, u); err != nil {
		return nil, database.Translate(err, "user")
	}

	s.log.Info("User created", map[string]interface{}{
		"user_id":   u.ID,
		"federated": u.GoogleID != nil,
	})
	return u, nil
}

// Update applies a partial profile update and returns the updated user.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*User, error) {
	u, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, database.Translate(err, "user")
	}

	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, errors.Internal(err)
		}
		u.PasswordHash = &hash
	}

	if err := s.store.Save(ctx, u); err != nil {
		return nil, database.Translate(err, "user")
	}

	s.log.Info("User updated", map[string]interface{}{
		"user_id":          u.ID,
		"password_changed": in.Password != nil,
	})
	return u, nil
}

// Delete removes the identity with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.FindByID(ctx, id); err != nil {
		return database.Translate(err, "user")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return database.Translate(err, "user")
	}
	s.log.Info("User deleted", map[string]interface{}{"user_id": id})
	return nil
}
