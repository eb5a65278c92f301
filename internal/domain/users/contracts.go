package users

import (
	"context"
	"time"
)

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create adds a new User or returns ErrUsernameTaken
	Create(ctx context.Context, user *User) error
	// GetByUsername retrieves a User or returns ErrUserNotFound
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetByID retrieves a User or returns ErrUserNotFound
	GetByID(ctx context.Context, userID int64) (*User, error)
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify compares in constant time
	Verify(hash, password string) bool
}

// TokenIssuer signs and verifies access tokens bound to a username
type TokenIssuer interface {
	Issue(subject string) (token string, expiresAt time.Time, err error)
	// Verify returns the subject of a valid token or ErrInvalidToken
	Verify(token string) (subject string, err error)
}

// AuthService authenticates requests and manages accounts
type AuthService interface {
	// Register creates a user with a hashed password
	Register(ctx context.Context, creds *Credentials) (*User, error)
	// AuthenticateBasic resolves HTTP Basic credentials to a user
	AuthenticateBasic(ctx context.Context, username, password string) (*User, error)
	// Login verifies credentials and issues an access token
	Login(ctx context.Context, username, password string) (*Token, error)
	// AuthenticateToken resolves a bearer token to a user
	AuthenticateToken(ctx context.Context, token string) (*User, error)
	// IssueToken issues a token for an existing user without checking a password
	IssueToken(ctx context.Context, username string) (*Token, error)
}
