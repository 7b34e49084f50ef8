package user

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Store persists users via GORM. It returns raw storage errors; the
// service layer translates them into AppErrors.
type Store struct {
	db *gorm.DB
}

// NewStore creates a user store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindByEmail looks a user up by email, case-insensitively.
func (s *Store) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByGoogleID looks a user up by the external Google subject id.
func (s *Store) FindByGoogleID(ctx context.Context, googleID string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("google_id = ?", googleID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID looks a user up by primary key.
func (s *Store) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The unique index on email surfaces
// duplicates as gorm.ErrDuplicatedKey.
func (s *Store) Create(ctx context.Context, u *User) error {
	u.Email = normalizeEmail(u.Email)
	return s.db.WithContext(ctx).Create(u).Error
}

// Save persists all fields of an existing user.
func (s *Store) Save(ctx context.Context, u *User) error {
	u.Email = normalizeEmail(u.Email)
	return s.db.WithContext(ctx).Save(u).Error
}

// Delete removes a user by primary key.
func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&User{}, id).Error
}

// normalizeEmail lowercases for the case-insensitive uniqueness the
// directory guarantees.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
