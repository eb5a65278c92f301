package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RestConfig is the root configuration of the REST API
type RestConfig struct {
	Port      string            `yaml:"port"`
	Logger    LoggerSettings    `yaml:"logger"`
	Database  DatabaseSettings  `yaml:"database"`
	Auth      AuthSettings      `yaml:"auth"`
	Cache     CacheSettings     `yaml:"cache"`
	RateLimit RateLimitSettings `yaml:"rate_limit"`
	CORS      CORSSettings      `yaml:"cors"`
}

// DefaultRestConfig returns the configuration used when no file is present.
// The JWT secret is intentionally left empty and must be provided.
func DefaultRestConfig() *RestConfig {
	return &RestConfig{
		Port: "8000",
		Logger: LoggerSettings{
			LogLevel: LogLevelInfo,
			LogType:  LogTypeConsole,
		},
		Database: DatabaseSettings{
			Type: SqliteDbType,
			DSN:  "books.db",
		},
		Auth: AuthSettings{
			Issuer:   "bookshelf",
			TokenTTL: 30 * time.Minute,
		},
		Cache: CacheSettings{
			Addr: "localhost:6379",
			TTL:  10 * time.Minute,
		},
		RateLimit: RateLimitSettings{
			RPS:   5,
			Burst: 10,
		},
		CORS: CORSSettings{
			AllowOrigins: []string{"*"},
		},
	}
}

// InitializeRestConfig loads the YAML file at path on top of the defaults,
// applies BOOKSHELF_* environment overrides and validates the result.
// A missing file is not an error.
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg := DefaultRestConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := applyEnvOverrides(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the root config and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig.Port: %w", err)
	}

	validators := []interface{ Validate() error }{
		&c.Logger, &c.Database, &c.Auth, &c.Cache, &c.RateLimit, &c.CORS,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

func applyEnvOverrides(cfg *RestConfig, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("BOOKSHELF_PORT", &cfg.Port)
	str("BOOKSHELF_LOG_LEVEL", &cfg.Logger.LogLevel)
	str("BOOKSHELF_LOG_TYPE", &cfg.Logger.LogType)
	str("BOOKSHELF_DB_TYPE", &cfg.Database.Type)
	str("BOOKSHELF_DB_DSN", &cfg.Database.DSN)
	str("BOOKSHELF_DB_NAME", &cfg.Database.Name)
	str("BOOKSHELF_JWT_SECRET", &cfg.Auth.JWTSecret)
	str("BOOKSHELF_REDIS_ADDR", &cfg.Cache.Addr)
	str("BOOKSHELF_REDIS_PASSWORD", &cfg.Cache.Password)

	if v, ok := lookup("BOOKSHELF_CORS_ORIGINS"); ok && v != "" {
		cfg.CORS.AllowOrigins = strings.Split(v, ",")
	}

	bools := map[string]*bool{
		"BOOKSHELF_DB_ECHO":       &cfg.Database.Echo,
		"BOOKSHELF_CACHE_ENABLED": &cfg.Cache.Enabled,
		"BOOKSHELF_RATE_LIMIT":    &cfg.RateLimit.Enabled,
	}
	for key, dst := range bools {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		*dst = b
	}

	if v, ok := lookup("BOOKSHELF_TOKEN_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration for BOOKSHELF_TOKEN_TTL: %w", err)
		}
		cfg.Auth.TokenTTL = d
	}

	return nil
}
