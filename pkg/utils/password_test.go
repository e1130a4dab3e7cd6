package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	password := "password123"
	hashedPassword, err := HashPassword(password)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
	assert.True(t, strings.HasPrefix(hashedPassword, "$argon2id$"))
}

func TestHashPassword_UniquePerCall(t *testing.T) {
	first, err := HashPassword("password123")
	assert.NoError(t, err)
	second, err := HashPassword("password123")
	assert.NoError(t, err)

	// Different salts mean different encodings for the same password
	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	password := "password123"
	hashedPassword, _ := HashPassword(password)

	valid, err := VerifyPassword(password, hashedPassword)
	assert.NoError(t, err)
	assert.True(t, valid)

	valid, err = VerifyPassword("wrongpassword", hashedPassword)
	assert.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	valid, err := VerifyPassword("password123", "invalidhash")
	assert.Error(t, err)
	assert.False(t, valid)
}
