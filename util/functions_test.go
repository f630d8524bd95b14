package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	result := Unique([]string{"b", "a", "b", "c", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, result)
}

func TestUniqueEmpty(t *testing.T) {
	result := Unique(nil)
	assert.Len(t, result, 0)
}
