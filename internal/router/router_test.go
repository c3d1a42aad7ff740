// internal/router/router_test.go
package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/marketplace-backend/internal/config"
	"github.com/minimarket/marketplace-backend/internal/utils"
)

// The router is wired with no database: public reads must degrade to empty
// results and authenticated writes must fail loudly.
func degradedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		JWT:         config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1},
		Auth:        config.AuthConfig{ProviderSecret: "provider-secret"},
	}
	return Initialize(nil, cfg)
}

func TestHealthEndpoint(t *testing.T) {
	r := degradedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"storage":false`)
}

func TestListProductsDegradesToEmpty(t *testing.T) {
	r := degradedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestMeIsNullWhenAnonymous(t *testing.T) {
	r := degradedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/v1/auth/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":null`)
}

func TestOrderRoutesRequireAuth(t *testing.T) {
	r := degradedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/orders", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProductFailsWithoutStorage(t *testing.T) {
	r := degradedRouter()

	token, err := utils.GenerateJWT(uuid.New(), "ext|1", "user", 1)
	require.NoError(t, err)

	body := `{"name":"widget","price":500,"quantity":3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "UNAVAILABLE")
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	r := degradedRouter()

	token, err := utils.GenerateJWT(uuid.New(), "ext|1", "user", 1)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRoutesAcceptAdmins(t *testing.T) {
	r := degradedRouter()

	token, err := utils.GenerateJWT(uuid.New(), "ext|admin", "admin", 1)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestInvalidProductInputRejectedBeforeStorage(t *testing.T) {
	r := degradedRouter()

	token, err := utils.GenerateJWT(uuid.New(), "ext|1", "user", 1)
	require.NoError(t, err)

	// Price must be positive; validation fires before any persistence call,
	// so even without storage this is a 400, not a 503.
	body := `{"name":"widget","price":0}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/v1/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}
