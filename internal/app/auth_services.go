package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MGTheTrain/bookshelf/internal/domain/users"
	"github.com/MGTheTrain/bookshelf/internal/pkg/apperr"
	"github.com/MGTheTrain/bookshelf/internal/pkg/logger"
)

const (
	schemeBasic  = "Basic"
	schemeBearer = "Bearer"

	detailBadCredentials = "Incorrect username or password"
	detailBadToken       = "Could not validate credentials"
)

// authService implements the AuthService interface
type authService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	issuer   users.TokenIssuer
	logger   logger.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo users.UserRepository, hasher users.PasswordHasher, issuer users.TokenIssuer, logger logger.Logger) (users.AuthService, error) {
	if userRepo == nil || hasher == nil || issuer == nil {
		return nil, fmt.Errorf("auth service requires a user repository, a hasher and a token issuer")
	}
	return &authService{userRepo: userRepo, hasher: hasher, issuer: issuer, logger: logger}, nil
}

func (s *authService) Register(ctx context.Context, creds *users.Credentials) (*users.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, apperr.Unprocessable("%v", err)
	}

	user := &users.User{Username: creds.Username}
	if err := user.SetPassword(s.hasher, creds.Password); err != nil {
		return nil, apperr.Internal(err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, users.ErrUsernameTaken) {
			return nil, apperr.BadRequest("Username %s is already registered", creds.Username).Wrap(err)
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) AuthenticateBasic(ctx context.Context, username, password string) (*users.User, error) {
	return s.checkPassword(ctx, username, password, schemeBasic)
}

func (s *authService) Login(ctx context.Context, username, password string) (*users.Token, error) {
	user, err := s.checkPassword(ctx, username, password, schemeBearer)
	if err != nil {
		return nil, err
	}
	return s.issue(user.Username)
}

func (s *authService) AuthenticateToken(ctx context.Context, token string) (*users.User, error) {
	subject, err := s.issuer.Verify(token)
	if err != nil {
		return nil, apperr.Unauthorized(schemeBearer, detailBadToken).Wrap(err)
	}

	user, err := s.userRepo.GetByUsername(ctx, subject)
	if errors.Is(err, users.ErrUserNotFound) {
		return nil, apperr.Unauthorized(schemeBearer, detailBadToken).Wrap(err)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) IssueToken(ctx context.Context, username string) (*users.Token, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, users.ErrUserNotFound) {
		return nil, apperr.NotFound("User %s not found", username).Wrap(err)
	}
	if err != nil {
		return nil, err
	}
	return s.issue(user.Username)
}

// checkPassword spends one hash comparison on unknown users as well.
func (s *authService) checkPassword(ctx context.Context, username, password, scheme string) (*users.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, users.ErrUserNotFound) {
		return nil, err
	}

	if user == nil {
		s.hasher.Verify(s.fallbackHash(), password)
		s.logger.Info("Rejected login for unknown user ", username)
		return nil, apperr.Unauthorized(scheme, detailBadCredentials)
	}
	if !user.VerifyPassword(s.hasher, password) {
		s.logger.Info("Rejected login for user ", username)
		return nil, apperr.Unauthorized(scheme, detailBadCredentials)
	}
	return user, nil
}

func (s *authService) fallbackHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("not-a-real-password")
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}

func (s *authService) issue(username string) (*users.Token, error) {
	token, expiresAt, err := s.issuer.Issue(username)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &users.Token{AccessToken: token, TokenType: users.TokenTypeBearer, ExpiresAt: expiresAt}, nil
}
