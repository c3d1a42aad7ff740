// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/minimarket/marketplace-backend/internal/services"
	"github.com/minimarket/marketplace-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// POST /orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	buyerID, ok := callerID(c)
	if !ok {
		return
	}

	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), buyerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"order": order})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	userID, ok := callerID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"order": order})
}

// GET /orders/purchases
func (h *OrderHandler) GetPurchases(c *gin.Context) {
	buyerID, ok := callerID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.GetPurchases(buyerID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"orders": orders})
}

// GET /orders/sales
func (h *OrderHandler) GetSales(c *gin.Context) {
	sellerID, ok := callerID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.GetSales(sellerID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"orders": orders})
}
