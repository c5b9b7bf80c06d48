package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidationTargets(t *testing.T) {
	// An operator touching another account's row invalidates both series.
	assert.Equal(t, []uint{1, 7}, invalidationTargets(1, 7))

	// Touching your own row invalidates once.
	assert.Equal(t, []uint{1}, invalidationTargets(1, 1))

	assert.Equal(t, []uint{1}, invalidationTargets(1))

	assert.Equal(t, []uint{1, 7, 9}, invalidationTargets(1, 7, 9, 7, 1))
}
