// internal/store/orders.go
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minimarket/marketplace-backend/internal/apperrors"
	"github.com/minimarket/marketplace-backend/internal/models"
)

// PlaceOrder is the one multi-step write: it inserts the order row and
// decrements the product's stock in a single database transaction.
//
// The decrement is conditional (quantity >= requested); zero rows affected
// means another buyer got there first and the whole transaction rolls back
// with ErrInsufficientStock. Stock can never go negative and an order row is
// never left behind without its matching decrement.
func (s *Store) PlaceOrder(buyerID, productID uuid.UUID, quantity int) (*models.Order, error) {
	if err := s.writeGuard(); err != nil {
		return nil, err
	}

	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to fetch product: %w", err)
		}

		if product.Quantity < quantity {
			return apperrors.ErrInsufficientStock
		}

		// Conditional decrement; the CASE derives sold/available from the
		// post-decrement quantity in the same statement.
		res := tx.Model(&models.Product{}).
			Where("id = ? AND quantity >= ?", productID, quantity).
			Updates(map[string]interface{}{
				"quantity": gorm.Expr("quantity - ?", quantity),
				"status": gorm.Expr("CASE WHEN quantity - ? = 0 THEN ? ELSE ? END",
					quantity, models.ProductStatusSold, models.ProductStatusAvailable),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to decrement stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInsufficientStock
		}

		order = &models.Order{
			BuyerID:   buyerID,
			SellerID:  product.SellerID,
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price * int64(quantity),
			Status:    models.OrderStatusCompleted,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *Store) GetOrder(id uuid.UUID) (*models.Order, error) {
	if s.db == nil {
		s.warnDegraded("get_order")
		return nil, nil
	}

	var order models.Order
	if err := s.db.Preload("Product").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}

func (s *Store) ListOrdersByBuyer(buyerID uuid.UUID) ([]models.Order, error) {
	if s.db == nil {
		s.warnDegraded("list_orders_by_buyer")
		return []models.Order{}, nil
	}

	var orders []models.Order
	err := s.db.Where("buyer_id = ?", buyerID).
		Preload("Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return orders, nil
}

func (s *Store) ListOrdersBySeller(sellerID uuid.UUID) ([]models.Order, error) {
	if s.db == nil {
		s.warnDegraded("list_orders_by_seller")
		return []models.Order{}, nil
	}

	var orders []models.Order
	err := s.db.Where("seller_id = ?", sellerID).
		Preload("Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus exists for the status enum's full lifecycle; only the
// initial completed state is produced by the placement flow today.
func (s *Store) UpdateOrderStatus(id uuid.UUID, status models.OrderStatus) error {
	if err := s.writeGuard(); err != nil {
		return err
	}

	if err := s.db.Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
