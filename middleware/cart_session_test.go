package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/16SULPHUR/new-vh-ecom/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestRouter(captured *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CartSession())
	router.GET("/bag", func(c *gin.Context) {
		*captured = CartIDFromContext(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestCartSessionMintsCookieWhenMissing(t *testing.T) {
	var cartID string
	router := sessionTestRouter(&cartID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bag", nil)
	router.ServeHTTP(w, req)

	_, err := uuid.Parse(cartID)
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, services.CartSessionCookie, cookies[0].Name)
	assert.Equal(t, cartID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, services.CartSessionMaxAge, cookies[0].MaxAge)
}

func TestCartSessionPreservesExistingCookie(t *testing.T) {
	var cartID string
	router := sessionTestRouter(&cartID)
	existing := uuid.NewString()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bag", nil)
	req.AddCookie(&http.Cookie{Name: services.CartSessionCookie, Value: existing})
	router.ServeHTTP(w, req)

	assert.Equal(t, existing, cartID)
	// No Set-Cookie when the token is already well-formed.
	assert.Empty(t, w.Result().Cookies())
}

func TestCartSessionReplacesMalformedCookie(t *testing.T) {
	var cartID string
	router := sessionTestRouter(&cartID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bag", nil)
	req.AddCookie(&http.Cookie{Name: services.CartSessionCookie, Value: "garbage"})
	router.ServeHTTP(w, req)

	assert.NotEqual(t, "garbage", cartID)
	_, err := uuid.Parse(cartID)
	require.NoError(t, err)
	require.Len(t, w.Result().Cookies(), 1)
}

func TestCartIDFromContextMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, CartIDFromContext(c))
}
