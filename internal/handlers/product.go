// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/minimarket/marketplace-backend/internal/services"
	"github.com/minimarket/marketplace-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
		"limit":    params.Limit,
		"offset":   params.Offset,
	})
}

// GET /admin/products
//
// The full inventory, sold-out listings included.
func (h *ProductHandler) ListAllProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, err := h.productService.ListAllProducts(params)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": products,
		"limit":    params.Limit,
		"offset":   params.Offset,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	sellerID, ok := callerID(c)
	if !ok {
		return
	}

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), sellerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"product": product})
}

// GET /products/mine
func (h *ProductHandler) GetMyProducts(c *gin.Context) {
	sellerID, ok := callerID(c)
	if !ok {
		return
	}

	products, err := h.productService.GetSellerProducts(sellerID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"products": products})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	sellerID, ok := callerID(c)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, sellerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// POST /products/upload-image
func (h *ProductHandler) UploadProductImage(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	if h.storageService == nil {
		utils.UnavailableResponse(c, "Image uploads are not configured")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "No image uploaded", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Failed to read image", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadProductImage(file, fileHeader)
	if err != nil {
		// Only rejections of the file itself are the client's fault; a
		// failed store write is ours.
		if errors.Is(err, services.ErrInvalidImage) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"image": result})
}
