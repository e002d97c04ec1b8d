package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultJWTIssuer is stamped into every token the API signs.
const DefaultJWTIssuer = "hireflow"

// minJWTSecretLen guards against toy HS256 keys outside tests.
const minJWTSecretLen = 32

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
	// Issuer is checked on validation when set.
	Issuer string
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required, at least 32 bytes), JWT_EXPIRATION_HOURS (default: 24)
// and JWT_ISSUER (default: hireflow).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}
	if len(secret) < minJWTSecretLen {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes, got %d", minJWTSecretLen, len(secret))
	}

	hours := 24
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		hours = v
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = DefaultJWTIssuer
	}

	cfg := &JWTConfig{
		Secret:          secret,
		ExpirationHours: hours,
		Issuer:          issuer,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Expiration is the lifetime of a freshly signed token.
func (c *JWTConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

func (c *JWTConfig) normalize() error {
	if c.ExpirationHours < 1 || c.ExpirationHours > 24*30 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be between 1 and 720, got: %d", c.ExpirationHours)
	}
	return nil
}
