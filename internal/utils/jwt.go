// internal/utils/jwt.go
package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// JWTClaims are the platform's own session claims, issued after the auth
// provider's identity token has been verified and the user upserted.
type JWTClaims struct {
	UserID string `json:"user_id"`
	AuthID string `json:"auth_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ProviderClaims is the payload of the external auth provider's identity
// token. Subject carries the provider-side identity.
type ProviderClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

var jwtSecret = []byte("your-secret-key-change-in-production")

func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateJWT(userID uuid.UUID, authID, role string, ttlHours int) (string, error) {
	claims := JWTClaims{
		UserID: userID.String(),
		AuthID: authID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "marketplace",
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ValidateProviderToken verifies an identity token minted by the external
// auth provider against the shared secret.
func ValidateProviderToken(tokenString string, secret []byte) (*ProviderClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ProviderClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ProviderClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid identity token")
	}
	if claims.Subject == "" {
		return nil, errors.New("identity token has no subject")
	}

	return claims, nil
}

// GenerateProviderToken mints an identity token the way the auth provider
// does. Used by tests and local development tooling.
func GenerateProviderToken(authID, name, email string, secret []byte, ttl time.Duration) (string, error) {
	claims := ProviderClaims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   authID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
