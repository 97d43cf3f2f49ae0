// Package hash provides one-way password hashing.
package hash

import "golang.org/x/crypto/bcrypt"

// Hasher turns plaintext passwords into storable hashes and verifies
// candidates against stored hashes.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Check(plaintext, stored string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt-backed Hasher with the default cost.
func NewBcryptHasher() Hasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Check reports whether plaintext matches the stored hash. A malformed
// stored hash is a verification failure, not an error.
func (h *bcryptHasher) Check(plaintext, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}
