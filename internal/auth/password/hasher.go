// Package password provides one-way password hashing and verification.
//
// Hashing embeds a fresh random salt in every result, so hashing the
// same password twice yields different strings. Comparison recomputes
// from the embedded salt and compares in constant time.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes credentials and verifies them against stored hashes.
type Hasher interface {
	// Hash returns a salted, irreversible digest of the password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. It returns false,
	// never an error, for any mismatch, including a malformed or empty
	// stored hash.
	Compare(password, hash string) bool
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// Option configures the bcrypt hasher.
type Option func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: bcrypt.DefaultCost,
// accepted range 4-31).
func WithCost(cost int) Option {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewBcryptHasher creates a bcrypt-based password hasher.
func NewBcryptHasher(opts ...Option) *BcryptHasher {
	h := &BcryptHasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns a salted bcrypt digest of password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether password matches hash.
func (h *BcryptHasher) Compare(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
