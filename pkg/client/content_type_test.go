package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJSONContentType(t *testing.T) {
	t.Parallel()
	assert.True(t, isJSONContentType("application/json"))
	assert.True(t, isJSONContentType("application/json; charset=utf-8"))
	assert.True(t, isJSONContentType("application/vnd.api+json"))
	assert.True(t, isJSONContentType("application/hal+json"))
	assert.False(t, isJSONContentType("application/jsonx"))
	assert.False(t, isJSONContentType("text/html"))
	assert.False(t, isJSONContentType("text/json"))
	assert.False(t, isJSONContentType(""))
}
