package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard_Allowed(t *testing.T) {
	g := New([]int64{42, 1001})

	assert.True(t, g.Allowed(42))
	assert.True(t, g.Allowed(1001))
	assert.False(t, g.Allowed(7))
}

func TestGuard_EmptyAllowlistDeniesEveryone(t *testing.T) {
	g := New(nil)

	assert.False(t, g.Allowed(42))
	assert.False(t, g.Allowed(0))
}
