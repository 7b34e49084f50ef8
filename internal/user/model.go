// Package user implements the user directory: the store of registered
// identities the auth subsystem authenticates against.
package user

import (
	"time"
)

// Role is the single admin/user distinction the platform supports.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered identity. PasswordHash is nil for identities
// created purely via federation; no local password can sign them in.
// GoogleID is nil for identities that never federated. Every persisted
// user has at least one of the two set.
type User struct {
	ID           int64   `gorm:"primaryKey" json:"id"`
	FullName     string  `gorm:"size:100;not null" json:"fullName"`
	Email        string  `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PasswordHash *string `gorm:"size:255" json:"-"`
	GoogleID     *string `gorm:"size:255;uniqueIndex" json:"-"`
	Role         Role    `gorm:"size:16;not null;default:user" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName fixes the table name regardless of pluralization settings.
func (User) TableName() string { return "users" }

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// StoredHash returns the password hash, or the empty string when the
// identity has none. Comparing a password against the empty string
// always fails, which is exactly the behavior login needs for
// federation-only accounts.
func (u *User) StoredHash() string {
	if u.PasswordHash == nil {
		return ""
	}
	return *u.PasswordHash
}
