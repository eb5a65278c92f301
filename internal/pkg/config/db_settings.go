package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings holds connection settings for the relational store
type DatabaseSettings struct {
	Type string `yaml:"type" validate:"required,oneof=sqlite postgres mysql"`
	DSN  string `yaml:"dsn" validate:"required"`
	// Name is created on demand for postgres when set
	Name string `yaml:"name"`
	// Echo logs every generated SQL statement
	Echo            bool          `yaml:"echo"`
	MaxOpenConns    int           `yaml:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `yaml:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" validate:"gte=0"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.MaxIdleConns > 0 && s.MaxOpenConns > 0 && s.MaxIdleConns > s.MaxOpenConns {
		return fmt.Errorf("max idle connections (%d) must not exceed max open connections (%d)", s.MaxIdleConns, s.MaxOpenConns)
	}

	return nil
}
