// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Enums
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "available"
	ProductStatusPending   ProductStatus = "pending"
	ProductStatusSold      ProductStatus = "sold"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// DeriveProductStatus maps a quantity onto the sold/available pair.
// Invariant: a product is sold exactly when its quantity is zero.
func DeriveProductStatus(quantity int) ProductStatus {
	if quantity == 0 {
		return ProductStatusSold
	}
	return ProductStatusAvailable
}
