// Package users defines accounts and the authentication contracts around them.
package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/bookshelf/internal/domain"
)

var (
	// ErrUserNotFound is returned by repositories when no user matches
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when creating a user with an existing username
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidToken is returned by token verifiers for malformed, forged or expired tokens
	ErrInvalidToken = errors.New("invalid token")
)

// TokenTypeBearer is the token_type reported for issued access tokens
const TokenTypeBearer = "bearer"

// User entity
type User struct {
	ID           int64  `validate:"gte=0"`
	Username     string `validate:"required,notblank,min=3,max=64"`
	PasswordHash string `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	return domain.ValidateStruct(u)
}

// SetPassword stores the hash of password.
func (u *User) SetPassword(hasher PasswordHasher, password string) error {
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// VerifyPassword reports whether password matches the stored hash.
func (u *User) VerifyPassword(hasher PasswordHasher, password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return hasher.Verify(u.PasswordHash, password)
}

// MaxPasswordBytes is the longest input bcrypt accepts
const MaxPasswordBytes = 72

// Credentials is a username and a plaintext password
type Credentials struct {
	Username string `validate:"required,notblank,min=3,max=64"`
	Password string `validate:"required,min=8"`
}

// Validate for validating Credentials struct. The password limit counts
// bytes, not characters.
func (c *Credentials) Validate() error {
	if err := domain.ValidateStruct(c); err != nil {
		return err
	}
	if len(c.Password) > MaxPasswordBytes {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordBytes)
	}
	return nil
}

// Token is an issued access token
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
