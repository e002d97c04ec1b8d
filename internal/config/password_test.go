package config

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testPasswordConfig(pepper string) *PasswordConfig {
	return &PasswordConfig{BcryptCost: bcrypt.MinCost, Pepper: pepper}
}

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		wantCost int
		wantErr  bool
	}{
		{name: "default cost", cost: "", wantCost: DefaultBcryptCost},
		{name: "valid cost", cost: "11", wantCost: 11},
		{name: "cost too low", cost: "9", wantErr: true},
		{name: "cost too high", cost: "15", wantErr: true},
		{name: "invalid cost", cost: "invalid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			t.Setenv("PASSWORD_PEPPER", "pep")

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, "pep", cfg.Pepper)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := testPasswordConfig("")

	hash, err := cfg.HashPassword("changeme123")
	require.NoError(t, err)
	assert.NotEqual(t, "changeme123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, cfg.VerifyPassword("changeme123", hash))
	assert.False(t, cfg.VerifyPassword("changeme124", hash))
	assert.False(t, cfg.VerifyPassword("changeme123", "not-a-hash"))
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := testPasswordConfig("server-pepper")
	plain := testPasswordConfig("")

	hash, err := peppered.HashPassword("changeme123")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("changeme123", hash))
	assert.False(t, plain.VerifyPassword("changeme123", hash), "pepper rotation invalidates hashes")
	assert.False(t, testPasswordConfig("other").VerifyPassword("changeme123", hash))
}

func TestPasswordConfig_Salted(t *testing.T) {
	cfg := testPasswordConfig("")

	a, err := cfg.HashPassword("same-password")
	require.NoError(t, err)
	b, err := cfg.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, cfg.VerifyPassword("same-password", a))
	assert.True(t, cfg.VerifyPassword("same-password", b))
}

func TestPasswordConfig_TooLong(t *testing.T) {
	cfg := testPasswordConfig(strings.Repeat("p", 10))

	_, err := cfg.HashPassword(strings.Repeat("a", 62))
	assert.NoError(t, err, "72 bytes including pepper is accepted")

	_, err = cfg.HashPassword(strings.Repeat("a", 63))
	assert.ErrorContains(t, err, "password too long")
}

func TestPasswordConfig_ConcurrentVerify(t *testing.T) {
	cfg := testPasswordConfig("")
	hash, err := cfg.HashPassword("changeme123")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cfg.VerifyPassword("changeme123", hash)
		}(i)
	}
	wg.Wait()

	for _, ok := range results {
		assert.True(t, ok)
	}
}
