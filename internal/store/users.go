// internal/store/users.go
package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minimarket/marketplace-backend/internal/models"
)

// UpsertUserByAuthID creates the user on first login and refreshes the
// mutable fields afterwards. AuthID is immutable; role follows whatever the
// caller's role policy resolved for this login.
func (s *Store) UpsertUserByAuthID(authID, name, email string, role models.UserRole) (*models.User, error) {
	if err := s.writeGuard(); err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		AuthID:      authID,
		Name:        name,
		Email:       email,
		Role:        role,
		LastLoginAt: &now,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "auth_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "role", "last_login_at", "updated_at"}),
	}).Create(user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	// Re-read so the caller sees the canonical row, not the insert values.
	return s.GetUserByAuthID(authID)
}

func (s *Store) GetUserByAuthID(authID string) (*models.User, error) {
	if s.db == nil {
		s.warnDegraded("get_user_by_auth_id")
		return nil, nil
	}

	var user models.User
	if err := s.db.Where("auth_id = ?", authID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}
