// internal/services/order_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/minimarket/marketplace-backend/internal/apperrors"
	"github.com/minimarket/marketplace-backend/internal/models"
	"github.com/minimarket/marketplace-backend/internal/store"
	"github.com/minimarket/marketplace-backend/internal/utils"
)

type OrderService struct {
	store          *store.Store
	productService *ProductService
}

type PlaceOrderRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	// Quantity defaults to 1 when omitted; an explicit zero is invalid.
	Quantity *int `json:"quantity,omitempty" validate:"omitempty,gt=0"`
}

func NewOrderService(store *store.Store, productService *ProductService) *OrderService {
	return &OrderService{
		store:          store,
		productService: productService,
	}
}

// PlaceOrder runs the purchase: the order insert and the stock decrement
// happen in one transaction inside the store, so two concurrent buyers can
// never oversell the same product. Quantity defaults to 1.
func (s *OrderService) PlaceOrder(ctx context.Context, buyerID uuid.UUID, req *PlaceOrderRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	order, err := s.store.PlaceOrder(buyerID, req.ProductID, quantity)
	if err != nil {
		return nil, err
	}

	s.productService.InvalidateProduct(ctx, req.ProductID)

	logrus.WithFields(logrus.Fields{
		"order_id":   order.ID,
		"buyer_id":   buyerID,
		"product_id": req.ProductID,
		"quantity":   quantity,
		"price":      order.Price,
	}).Info("order placed")

	return order, nil
}

// GetOrder returns the order if the caller is a participant (buyer or
// seller); anyone else gets Forbidden.
func (s *OrderService) GetOrder(id, userID uuid.UUID) (*models.Order, error) {
	order, err := s.store.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.ErrNotFound
	}
	if !order.IsParticipant(userID) {
		return nil, apperrors.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) GetPurchases(buyerID uuid.UUID) ([]models.Order, error) {
	return s.store.ListOrdersByBuyer(buyerID)
}

func (s *OrderService) GetSales(sellerID uuid.UUID) ([]models.Order, error) {
	return s.store.ListOrdersBySeller(sellerID)
}
