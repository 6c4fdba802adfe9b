package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	var p Password
	require.NoError(t, p.set("Secret_123"))

	assert.NotEqual(t, []byte("Secret_123"), p.hash)

	ok, err := p.compare("Secret_123")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.compare("secret_123")
	assert.NoError(t, err)
	assert.False(t, ok)
}
