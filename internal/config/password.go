package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Accepted BCRYPT_COST range for deployed services. Tests may build a PasswordConfig
// directly with bcrypt.MinCost.
const (
	MinBcryptCost     = 10
	MaxBcryptCost     = 14
	DefaultBcryptCost = 12
)

// maxPasswordBytes is the bcrypt input limit, pepper included.
const maxPasswordBytes = 72

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret appended before hashing
}

// NewPasswordConfig creates a new password configuration from environment variables.
// It reads BCRYPT_COST (default: 12) and optionally PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost := DefaultBcryptCost
	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		cost = v
	}

	cfg := &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}
	if cfg.BcryptCost < MinBcryptCost || cfg.BcryptCost > MaxBcryptCost {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", cfg.BcryptCost, MinBcryptCost, MaxBcryptCost)
	}
	return cfg, nil
}

// HashPassword hashes a password using bcrypt. Its signature matches seed.HashFunc.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	peppered := pw + c.Pepper
	if len(peppered) > maxPasswordBytes {
		return "", fmt.Errorf("password too long: %d bytes with pepper (max %d)", len(peppered), maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(peppered), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether pw matches the stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw+c.Pepper)) == nil
}
