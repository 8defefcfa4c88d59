package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Run("Unset Uses Default", func(t *testing.T) {
		assert.Equal(t, "api", GetEnvString("EHR_GATEWAY_TEST_UNSET", "api"))
	})

	t.Run("Empty Value Is Kept", func(t *testing.T) {
		t.Setenv("EHR_GATEWAY_TEST_PREFIX", "")
		assert.Equal(t, "", GetEnvString("EHR_GATEWAY_TEST_PREFIX", "api"))
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("Parses Value", func(t *testing.T) {
		t.Setenv("EHR_GATEWAY_TEST_PORT", " 6380 ")
		assert.Equal(t, 6380, GetEnvInt("EHR_GATEWAY_TEST_PORT", 6379))
	})

	t.Run("Invalid Value Uses Default", func(t *testing.T) {
		t.Setenv("EHR_GATEWAY_TEST_PORT", "six")
		assert.Equal(t, 6379, GetEnvInt("EHR_GATEWAY_TEST_PORT", 6379))
	})
}
