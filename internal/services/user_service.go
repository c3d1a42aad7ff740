// internal/services/user_service.go
package services

import (
	"fmt"

	"github.com/minimarket/marketplace-backend/internal/apperrors"
	"github.com/minimarket/marketplace-backend/internal/config"
	"github.com/minimarket/marketplace-backend/internal/models"
	"github.com/minimarket/marketplace-backend/internal/store"
	"github.com/minimarket/marketplace-backend/internal/utils"
)

type UserService struct {
	store *store.Store
	cfg   *config.Config
}

type LoginRequest struct {
	// Token is the identity token minted by the external auth provider.
	Token string `json:"token" validate:"required"`
}

type AuthResponse struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"` // in seconds
}

func NewUserService(store *store.Store, cfg *config.Config) *UserService {
	return &UserService{
		store: store,
		cfg:   cfg,
	}
}

// Login verifies the provider's identity token, upserts the user (create on
// first login, refresh mutable fields afterwards), and issues a platform
// session token. The admin role comes from the configured policy, never
// from a hardcoded identity comparison.
func (s *UserService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	claims, err := utils.ValidateProviderToken(req.Token, []byte(s.cfg.Auth.ProviderSecret))
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	role := models.UserRoleUser
	if s.cfg.Auth.IsAdminAuthID(claims.Subject) {
		role = models.UserRoleAdmin
	}

	user, err := s.store.UpsertUserByAuthID(claims.Subject, claims.Name, claims.Email, role)
	if err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateJWT(user.ID, user.AuthID, string(user.Role), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}

// GetCurrentUser resolves the session user by provider identity. A missing
// row is not an error; the caller renders it as a null user.
func (s *UserService) GetCurrentUser(authID string) (*models.User, error) {
	return s.store.GetUserByAuthID(authID)
}
