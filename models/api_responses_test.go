package models

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/store/bag", nil)
	return c
}

func TestSuccessResponseEnvelope(t *testing.T) {
	c := responseTestContext(t)

	resp := SuccessResponse(c, "Cart fetched successfully", []string{"a", "b"})

	assert.Equal(t, "Cart fetched successfully", resp.Message)
	assert.False(t, resp.Error)
	assert.Equal(t, []string{"a", "b"}, resp.Data)
	assert.Nil(t, resp.Rate)
}

func TestErrorResponseEnvelope(t *testing.T) {
	c := responseTestContext(t)

	resp := ErrorResponse(c, "Failed to fetch cart")

	assert.True(t, resp.Error)
	assert.Equal(t, "Failed to fetch cart", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestResponseCarriesRateWindow(t *testing.T) {
	c := responseTestContext(t)
	rate := &RateLimiter{Limit: 60, Remaining: 59, ResetAt: time.Now().Add(time.Minute), ResetInSeconds: 60}
	c.Set("rateLimiter", rate)

	resp := SuccessResponse(c, "Cart updated successfully", nil)
	require.NotNil(t, resp.Rate)
	assert.Equal(t, 60, resp.Rate.Limit)
	assert.Equal(t, 59, resp.Rate.Remaining)

	// A wrongly-typed context value is ignored, not propagated.
	c.Set("rateLimiter", "bogus")
	assert.Nil(t, ErrorResponse(c, "x").Rate)
}
