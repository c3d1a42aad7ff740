// internal/store/products.go
package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minimarket/marketplace-backend/internal/models"
)

func (s *Store) CreateProduct(product *models.Product) error {
	if err := s.writeGuard(); err != nil {
		return err
	}

	product.Status = models.DeriveProductStatus(product.Quantity)
	if err := s.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *Store) GetProduct(id uuid.UUID) (*models.Product, error) {
	if s.db == nil {
		s.warnDegraded("get_product")
		return nil, nil
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &product, nil
}

// ListProducts returns products ordered newest first. With availableOnly it
// filters to listable stock, which is what the public catalog shows.
func (s *Store) ListProducts(limit, offset int, availableOnly bool) ([]models.Product, error) {
	if s.db == nil {
		s.warnDegraded("list_products")
		return []models.Product{}, nil
	}

	query := s.db.Model(&models.Product{}).Order("created_at DESC")
	if availableOnly {
		query = query.Where("status = ?", models.ProductStatusAvailable)
	}

	var products []models.Product
	if err := query.Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *Store) ListProductsBySeller(sellerID uuid.UUID) ([]models.Product, error) {
	if s.db == nil {
		s.warnDegraded("list_products_by_seller")
		return []models.Product{}, nil
	}

	var products []models.Product
	err := s.db.Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list seller products: %w", err)
	}
	return products, nil
}

// UpdateProduct applies the given column updates. When quantity is among
// them the status column is kept in lockstep so the sold/quantity invariant
// holds on every write.
func (s *Store) UpdateProduct(id uuid.UUID, updates map[string]interface{}) error {
	if err := s.writeGuard(); err != nil {
		return err
	}

	if quantity, ok := updates["quantity"]; ok {
		if q, ok := quantity.(int); ok {
			updates["status"] = models.DeriveProductStatus(q)
		}
	}

	if err := s.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}
