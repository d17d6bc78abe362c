package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("GATEWAY_TEST_STRING", "value")

	assert.Equal(t, "value", GetEnvString("GATEWAY_TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("GATEWAY_TEST_STRING_UNSET", "default"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("GATEWAY_TEST_INT", "42")
	t.Setenv("GATEWAY_TEST_INT_BAD", "forty-two")

	assert.Equal(t, 42, GetEnvInt("GATEWAY_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("GATEWAY_TEST_INT_BAD", 7))
	assert.Equal(t, 7, GetEnvInt("GATEWAY_TEST_INT_UNSET", 7))
}
