package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPasswordRoundTrip(t *testing.T) {
	var user User
	require.NoError(t, user.SetPassword("correct horse battery"))
	assert.NotEmpty(t, user.Password)

	assert.NoError(t, user.ComparePassword("correct horse battery"))
	assert.Error(t, user.ComparePassword("wrong"))
}

func TestSetPasswordSurfacesBcryptError(t *testing.T) {
	var user User
	// bcrypt rejects inputs longer than 72 bytes
	err := user.SetPassword(strings.Repeat("x", 100))
	assert.Error(t, err)
	assert.Empty(t, user.Password)
}
