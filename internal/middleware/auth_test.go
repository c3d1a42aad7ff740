// internal/middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/marketplace-backend/internal/utils"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	r.GET("/admin", AuthRequired(), AdminRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/optional", OptionalAuth(), func(c *gin.Context) {
		_, authenticated := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"authenticated": authenticated})
	})

	return r
}

func TestAuthRequiredWithoutToken(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredWithMalformedHeader(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredWithValidToken(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := testRouter()

	token, err := utils.GenerateJWT(uuid.New(), "auth-1", "user", 1)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRequired(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := testRouter()

	userToken, err := utils.GenerateJWT(uuid.New(), "auth-1", "user", 1)
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT(uuid.New(), "auth-2", "admin", 1)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	utils.SetJWTSecret("test-secret")
	r := testRouter()

	// Anonymous callers pass through.
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/optional", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	// Authenticated callers are resolved.
	token, err := utils.GenerateJWT(uuid.New(), "auth-1", "user", 1)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}
