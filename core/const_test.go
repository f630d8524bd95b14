package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeIsBusinessScope(t *testing.T) {
	assert.False(t, ScopeAny.IsBusinessScope())
	assert.False(t, ScopeMine.IsBusinessScope())
	assert.True(t, ScopeAssigned.IsBusinessScope())
	assert.True(t, ScopeAvailable.IsBusinessScope())
}

func TestPossessionString(t *testing.T) {
	assert.Equal(t, "any", PossessionAny.String())
	assert.Equal(t, "own", PossessionOwn.String())
	assert.Equal(t, "unknown", Possession(42).String())
}
