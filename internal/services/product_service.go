// internal/services/product_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/minimarket/marketplace-backend/internal/apperrors"
	"github.com/minimarket/marketplace-backend/internal/cache"
	"github.com/minimarket/marketplace-backend/internal/models"
	"github.com/minimarket/marketplace-backend/internal/store"
	"github.com/minimarket/marketplace-backend/internal/utils"
)

type ProductService struct {
	store *store.Store
	cache *cache.Cache
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty" validate:"omitempty,max=100"`
	ImageURL    string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Tags        []string `json:"tags,omitempty"`
	Price       int64    `json:"price" validate:"required,gt=0"`
	Quantity    int      `json:"quantity" validate:"min=0"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Tags        []string `json:"tags,omitempty"`
	Price       *int64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity,omitempty" validate:"omitempty,min=0"`
}

func NewProductService(store *store.Store, cache *cache.Cache) *ProductService {
	return &ProductService{
		store: store,
		cache: cache,
	}
}

// catalogCacheKey caches the first page of the public catalog, the one
// query nearly every visitor hits.
const catalogCacheKey = "products:catalog:first"

func productCacheKey(id uuid.UUID) string {
	return "product:" + id.String()
}

func (s *ProductService) CreateProduct(ctx context.Context, sellerID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}

	if err := s.store.CreateProduct(product); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, catalogCacheKey)

	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var cached models.Product
	if s.cache.Get(ctx, productCacheKey(id), &cached) {
		return &cached, nil
	}

	product, err := s.store.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.ErrNotFound
	}

	s.cache.Set(ctx, productCacheKey(id), product)
	return product, nil
}

// ListProducts returns the public catalog: available products only. The
// default first page is served from cache; every write path that can change
// the catalog drops the cached page.
func (s *ProductService) ListProducts(ctx context.Context, params utils.PaginationParams) ([]models.Product, error) {
	firstPage := params.Offset == 0 && params.Limit == utils.DefaultLimit
	if firstPage {
		var cached []models.Product
		if s.cache.Get(ctx, catalogCacheKey, &cached) {
			return cached, nil
		}
	}

	products, err := s.store.ListProducts(params.Limit, params.Offset, true)
	if err != nil {
		return nil, err
	}

	if firstPage {
		s.cache.Set(ctx, catalogCacheKey, products)
	}
	return products, nil
}

// ListAllProducts returns every product regardless of status, for the admin
// surface. Not cached.
func (s *ProductService) ListAllProducts(params utils.PaginationParams) ([]models.Product, error) {
	return s.store.ListProducts(params.Limit, params.Offset, false)
}

func (s *ProductService) GetSellerProducts(sellerID uuid.UUID) ([]models.Product, error) {
	return s.store.ListProductsBySeller(sellerID)
}

// UpdateProduct applies the seller's edits after verifying ownership.
// A quantity edit carries the derived status with it inside the store.
func (s *ProductService) UpdateProduct(ctx context.Context, id, sellerID uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.store.GetProduct(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.ErrNotFound
	}
	if product.SellerID != sellerID {
		return nil, apperrors.ErrForbidden
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}

	if len(updates) == 0 {
		return product, nil
	}

	if err := s.store.UpdateProduct(id, updates); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, productCacheKey(id), catalogCacheKey)

	updated, err := s.store.GetProduct(id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// InvalidateProduct drops the cached copy and the catalog page after an
// out-of-band write, such as the stock decrement done by order placement.
func (s *ProductService) InvalidateProduct(ctx context.Context, id uuid.UUID) {
	s.cache.Delete(ctx, productCacheKey(id), catalogCacheKey)
}
