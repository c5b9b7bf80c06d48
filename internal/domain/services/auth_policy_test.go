package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticAuthorizationPolicy(t *testing.T) {
	policy := StaticAuthorizationPolicy{1: true, 7: true}

	assert.True(t, policy.IsOperator(1))
	assert.True(t, policy.IsOperator(7))
	assert.False(t, policy.IsOperator(2))
	assert.False(t, policy.IsOperator(0))
}
