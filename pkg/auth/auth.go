// Package auth holds the admin capability check. The admin secret is passed
// in at construction, so handlers never read process-wide state.
package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminPassword is used when no secret is configured.
const DefaultAdminPassword = "admin123"

// Authorizer decides whether a submitted admin password grants access.
type Authorizer interface {
	Authorize(password string) bool
}

// Plaintext matches the submitted password against the secret by exact equality.
type Plaintext struct {
	secret []byte
}

func NewPlaintext(secret string) *Plaintext {
	return &Plaintext{secret: []byte(secret)}
}

func (p *Plaintext) Authorize(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), p.secret) == 1
}

// Bcrypt checks the submitted password against a bcrypt hash of the secret.
type Bcrypt struct {
	hash []byte
}

func NewBcrypt(hash string) (*Bcrypt, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, errors.New("admin password hash is not a valid bcrypt hash")
	}
	return &Bcrypt{hash: []byte(hash)}, nil
}

func (b *Bcrypt) Authorize(password string) bool {
	return bcrypt.CompareHashAndPassword(b.hash, []byte(password)) == nil
}
