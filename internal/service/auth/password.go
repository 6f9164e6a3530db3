// Package auth provides the credential primitives for the HTTP layer:
// bcrypt password hashing and signed bearer tokens. It is framework-agnostic;
// the handler layer maps its errors onto HTTP status codes.
package auth

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted one-way password digests.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost.
// Pass 0 to use bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt digest of plaintext. bcrypt embeds a random
// salt, so hashing the same plaintext twice yields different digests.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest.
// A mismatch is not an error condition; it simply returns false.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
