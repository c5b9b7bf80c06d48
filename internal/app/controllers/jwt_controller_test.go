package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWargaGateAllows(t *testing.T) {
	allowed, fallback := wargaGateAllows("rahasia", "rahasia")
	assert.True(t, allowed)
	assert.False(t, fallback)

	allowed, fallback = wargaGateAllows("rahasia", "salah")
	assert.False(t, allowed)
	assert.False(t, fallback)

	// An unset password leaves the gate open whatever the attempt.
	allowed, fallback = wargaGateAllows("", "apapun")
	assert.True(t, allowed)
	assert.True(t, fallback)

	allowed, fallback = wargaGateAllows("", "")
	assert.True(t, allowed)
	assert.True(t, fallback)
}
