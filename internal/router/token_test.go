package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken_Multi(t *testing.T) {
	pick, err := ParseToken("device:strip1", false)
	require.NoError(t, err)
	assert.Equal(t, DevicePick{Key: "strip1"}, pick)

	pick, err = ParseToken("cmd:11", false)
	require.NoError(t, err)
	assert.Equal(t, CommandPick{Code: "11"}, pick)

	pick, err = ParseToken("back:devices", false)
	require.NoError(t, err)
	assert.Equal(t, BackPick{}, pick)
}

func TestParseToken_Flat(t *testing.T) {
	pick, err := ParseToken("5", true)
	require.NoError(t, err)
	assert.Equal(t, CommandPick{Code: "5"}, pick)

	// Prefixed tokens never appear in the flat flow.
	_, err = ParseToken("cmd:5", true)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestParseToken_Malformed(t *testing.T) {
	for _, token := range []string{"", "device:", "cmd:", "back:", "nonsense", "back:menu"} {
		_, err := ParseToken(token, false)
		assert.ErrorIs(t, err, ErrBadToken, "token %q", token)
	}

	_, err := ParseToken("", true)
	assert.ErrorIs(t, err, ErrBadToken)
}
