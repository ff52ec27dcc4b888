package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTimeoutDeadline(t *testing.T) {
	ctx, cancel := WithTimeout()
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.InDelta(t, 10*time.Second, time.Until(deadline), float64(time.Second))
}

func TestWithCustomTimeoutDeadline(t *testing.T) {
	ctx, cancel := WithCustomTimeout(2 * time.Minute)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.InDelta(t, 2*time.Minute, time.Until(deadline), float64(time.Second))
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "set")
	assert.Equal(t, "set", getEnv("CONFIG_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("CONFIG_TEST_MISSING_KEY", "fallback"))
}
