// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/minimarket/marketplace-backend/internal/services"
	"github.com/minimarket/marketplace-backend/internal/utils"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	resp, err := h.userService.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// GET /auth/me
//
// Behind OptionalAuth: an anonymous caller gets a null user, not an error.
func (h *AuthHandler) Me(c *gin.Context) {
	authID, exists := c.Get("auth_id")
	if !exists {
		utils.SuccessResponse(c, gin.H{"user": nil})
		return
	}

	user, err := h.userService.GetCurrentUser(authID.(string))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}
