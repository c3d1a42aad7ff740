// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product is a sellable item owned by exactly one seller. Price is an
// integer in the smallest currency unit; quantity never goes negative.
// Products are soft-deleted only, never removed.
type Product struct {
	BaseModel
	SellerID    uuid.UUID      `json:"seller_id" gorm:"type:uuid;not null;index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Category    string         `json:"category" gorm:"size:100;index"`
	ImageURL    string         `json:"image_url" gorm:"size:1024"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	Price       int64          `json:"price" gorm:"not null"`
	Quantity    int            `json:"quantity" gorm:"not null;default:0;check:quantity >= 0"`
	Status      ProductStatus  `json:"status" gorm:"type:varchar(20);not null;default:'available';index"`

	// Relationships
	Seller User    `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:ProductID"`
}
