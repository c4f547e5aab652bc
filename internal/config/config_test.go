package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")
	assert.Equal(t, "value", getEnv("SOME_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("SOME_MISSING_KEY", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SOME_INT_KEY", "7")
	assert.Equal(t, 7, getEnvInt("SOME_INT_KEY", 3))

	t.Setenv("SOME_BAD_INT_KEY", "not-a-number")
	assert.Equal(t, 3, getEnvInt("SOME_BAD_INT_KEY", 3))

	assert.Equal(t, 3, getEnvInt("SOME_MISSING_INT_KEY", 3))
}

func TestCorsConfig(t *testing.T) {
	opts := corsConfig("https://portfolio.test", "https://dashboard.test")
	assert.Equal(t, []string{"https://portfolio.test", "https://dashboard.test"}, opts.AllowedOrigins)
	assert.True(t, opts.AllowCredentials)
}
