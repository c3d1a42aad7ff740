// internal/models/order.go
package models

import "github.com/google/uuid"

// Order captures a purchase. Price is a snapshot of unit price times
// quantity at purchase time; later product edits do not touch it.
type Order struct {
	BaseModel
	BuyerID   uuid.UUID   `json:"buyer_id" gorm:"type:uuid;not null;index"`
	SellerID  uuid.UUID   `json:"seller_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID   `json:"product_id" gorm:"type:uuid;not null;index"`
	Quantity  int         `json:"quantity" gorm:"not null"`
	Price     int64       `json:"price" gorm:"not null"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	// Relationships
	Buyer   User    `json:"buyer,omitempty" gorm:"foreignKey:BuyerID"`
	Seller  User    `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// IsParticipant reports whether the given user is the buyer or seller.
func (o *Order) IsParticipant(userID uuid.UUID) bool {
	return o.BuyerID == userID || o.SellerID == userID
}
