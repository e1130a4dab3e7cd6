package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignCookieValue_RoundTrip(t *testing.T) {
	signed := SignCookieValue("some-token", "secret")

	value, err := VerifyCookieValue(signed, "secret")
	assert.NoError(t, err)
	assert.Equal(t, "some-token", value)
}

func TestVerifyCookieValue_Tampered(t *testing.T) {
	signed := SignCookieValue("some-token", "secret")

	_, err := VerifyCookieValue("other-token"+signed[len("some-token"):], "secret")
	assert.ErrorIs(t, err, ErrInvalidCookieValue)
}

func TestVerifyCookieValue_WrongSecret(t *testing.T) {
	signed := SignCookieValue("some-token", "secret1")

	_, err := VerifyCookieValue(signed, "secret2")
	assert.ErrorIs(t, err, ErrInvalidCookieValue)
}

func TestVerifyCookieValue_Malformed(t *testing.T) {
	for _, v := range []string{"", "noseparator", ".leadingdot"} {
		_, err := VerifyCookieValue(v, "secret")
		assert.ErrorIs(t, err, ErrInvalidCookieValue)
	}
}
