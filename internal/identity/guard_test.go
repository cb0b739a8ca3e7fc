package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	g := NewGuard([]string{"me", "Undefined"}, []string{"demo-", " test- "})

	assert.True(t, g.IsPlaceholder(""))
	assert.True(t, g.IsPlaceholder("  "))
	assert.True(t, g.IsPlaceholder("ME"))
	assert.True(t, g.IsPlaceholder("undefined"))
	assert.True(t, g.IsPlaceholder("demo-42"))
	assert.True(t, g.IsPlaceholder("Test-bot"))
	assert.False(t, g.IsPlaceholder("user-42"))

	var nilGuard *Guard
	assert.False(t, nilGuard.IsPlaceholder("user-42"))
	assert.True(t, nilGuard.IsPlaceholder(""))
}
