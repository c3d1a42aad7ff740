// internal/services/user_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimarket/marketplace-backend/internal/apperrors"
	"github.com/minimarket/marketplace-backend/internal/config"
	"github.com/minimarket/marketplace-backend/internal/store"
	"github.com/minimarket/marketplace-backend/internal/utils"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT:  config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1},
		Auth: config.AuthConfig{ProviderSecret: "provider-secret", AdminAuthIDs: []string{"ext|admin"}},
	}
}

func TestLoginRejectsInvalidProviderToken(t *testing.T) {
	svc := NewUserService(store.New(nil), testAuthConfig())

	_, err := svc.Login(&LoginRequest{Token: "not-a-jwt"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginRejectsWrongSecret(t *testing.T) {
	svc := NewUserService(store.New(nil), testAuthConfig())

	token, err := utils.GenerateProviderToken("ext|1", "Ada", "ada@example.com", []byte("wrong-secret"), time.Hour)
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Token: token})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	svc := NewUserService(store.New(nil), testAuthConfig())

	_, err := svc.Login(&LoginRequest{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoginDegradedStorageFailsLoudly(t *testing.T) {
	cfg := testAuthConfig()
	svc := NewUserService(store.New(nil), cfg)

	token, err := utils.GenerateProviderToken("ext|1", "Ada", "ada@example.com", []byte(cfg.Auth.ProviderSecret), time.Hour)
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Token: token})
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestAdminRolePolicy(t *testing.T) {
	cfg := testAuthConfig()

	assert.True(t, cfg.Auth.IsAdminAuthID("ext|admin"))
	assert.False(t, cfg.Auth.IsAdminAuthID("ext|user"))
	assert.False(t, cfg.Auth.IsAdminAuthID(""))
}
