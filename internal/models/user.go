// internal/models/user.go
package models

import "time"

// User is keyed by the identity the external auth provider resolves.
// AuthID is unique and never changes after the row is created; name and
// email are refreshed on every login.
type User struct {
	BaseModel
	AuthID      string     `json:"auth_id" gorm:"uniqueIndex;size:255;not null"`
	Name        string     `json:"name" gorm:"size:100"`
	Email       string     `json:"email" gorm:"size:255;index"`
	Role        UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	LastLoginAt *time.Time `json:"last_login_at"`

	// Relationships
	Products  []Product `json:"products,omitempty" gorm:"foreignKey:SellerID"`
	Purchases []Order   `json:"purchases,omitempty" gorm:"foreignKey:BuyerID"`
	Sales     []Order   `json:"sales,omitempty" gorm:"foreignKey:SellerID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
