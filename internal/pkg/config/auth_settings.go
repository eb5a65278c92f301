package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// AuthSettings configures password hashing and access token issuing
type AuthSettings struct {
	JWTSecret  string        `yaml:"jwt_secret" validate:"required,min=16"`
	Issuer     string        `yaml:"issuer" validate:"required"`
	TokenTTL   time.Duration `yaml:"token_ttl" validate:"required,gt=0"`
	BcryptCost int           `yaml:"bcrypt_cost"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.BcryptCost != 0 && (s.BcryptCost < bcrypt.MinCost || s.BcryptCost > bcrypt.MaxCost) {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}
