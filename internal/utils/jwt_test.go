// internal/utils/jwt_test.go
package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	userID := uuid.New()
	token, err := GenerateJWT(userID, "auth-123", "user", 1)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "auth-123", claims.AuthID)
	assert.Equal(t, "user", claims.Role)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateJWT(uuid.New(), "auth-123", "user", 1)
	require.NoError(t, err)

	SetJWTSecret("other-secret")
	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestProviderTokenRoundTrip(t *testing.T) {
	secret := []byte("provider-secret")

	token, err := GenerateProviderToken("ext|42", "Ada", "ada@example.com", secret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateProviderToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "ext|42", claims.Subject)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestProviderTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateProviderToken("ext|42", "", "", []byte("provider-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ValidateProviderToken(token, []byte("not-the-secret"))
	assert.Error(t, err)
}

func TestProviderTokenRejectsExpired(t *testing.T) {
	secret := []byte("provider-secret")
	token, err := GenerateProviderToken("ext|42", "", "", secret, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateProviderToken(token, secret)
	assert.Error(t, err)
}
