package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RateLimitSettings configures the per client token bucket.
// TrustedProxies lists the addresses whose X-Forwarded-For header is
// honoured when resolving the client IP. Empty trusts no proxy.
type RateLimitSettings struct {
	Enabled        bool     `yaml:"enabled"`
	RPS            float64  `yaml:"rps" validate:"required_if=Enabled true,gte=0"`
	Burst          int      `yaml:"burst" validate:"required_if=Enabled true,gte=0"`
	TrustedProxies []string `yaml:"trusted_proxies" validate:"omitempty,dive,cidr|ip"`
}

// CORSSettings lists the origins allowed to call the API from a browser
type CORSSettings struct {
	AllowOrigins []string `yaml:"allow_origins" validate:"required,min=1,dive,required"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	return nil
}

// Validate checks that all fields in CORSSettings are valid
func (s *CORSSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CORSSettings: %w", err)
	}
	return nil
}
