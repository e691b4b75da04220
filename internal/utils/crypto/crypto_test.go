package crypto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	password := "TestPassword123"

	hash, err := HashPassword(password, 12)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
}

func TestCheckPassword(t *testing.T) {
	password := "TestPassword123"

	hash, err := HashPassword(password, 12)
	assert.NoError(t, err)

	err = CheckPassword(password, hash)
	assert.NoError(t, err, "correct password should pass")

	err = CheckPassword("WrongPassword", hash)
	assert.Error(t, err, "wrong password should fail")
}

func TestNewResetToken(t *testing.T) {
	before := time.Now().UTC()

	token, expires, err := NewResetToken(30 * time.Minute)
	require.NoError(t, err)

	assert.Len(t, token, 64, "32 random bytes hex-encoded")
	assert.True(t, expires.After(before.Add(29*time.Minute)))
	assert.True(t, expires.Before(before.Add(31*time.Minute)))

	// Tokens must not repeat.
	other, _, err := NewResetToken(30 * time.Minute)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestIsStrong(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{"Valid password", "Password123", true},
		{"Too short", "Pass1", false},
		{"No uppercase", "password123", false},
		{"No lowercase", "PASSWORD123", false},
		{"No digit", "Password", false},
		{"Minimum valid", "Passw0rd", true},
		{"Long valid", "MyVeryLongPassword123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsStrong(tt.password))
		})
	}
}
