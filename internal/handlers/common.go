// internal/handlers/common.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/minimarket/marketplace-backend/internal/apperrors"
	"github.com/minimarket/marketplace-backend/internal/utils"
)

// callerID reads the authenticated user's id from the gin context. The auth
// middleware guarantees it is present on protected routes.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.UnauthorizedResponse(c, "Invalid session")
		return uuid.Nil, false
	}
	return userID, true
}

// respondError maps service errors onto the HTTP error taxonomy.
func respondError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		utils.NotFoundResponse(c, "Resource")
	case errors.Is(err, apperrors.ErrInsufficientStock):
		utils.ConflictResponse(c, "INSUFFICIENT_STOCK", "Requested quantity exceeds available stock")
	case errors.Is(err, apperrors.ErrUnauthorized):
		utils.UnauthorizedResponse(c, "")
	case errors.Is(err, apperrors.ErrForbidden):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, apperrors.ErrUnavailable):
		utils.UnavailableResponse(c, "")
	case errors.As(err, &validationErrs):
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(validationErrs))
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
