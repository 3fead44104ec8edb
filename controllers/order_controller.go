package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Abdouxone/KFP/middleware"
	"github.com/Abdouxone/KFP/services"
)

type OrderController struct {
	checkoutService *services.CheckoutService
}

func NewOrderController(checkoutService *services.CheckoutService) *OrderController {
	return &OrderController{checkoutService: checkoutService}
}

// PlaceOrderRequest references the cart being checked out and the chosen
// shipping address.
type PlaceOrderRequest struct {
	CartID            uuid.UUID `json:"cart_id" binding:"required"`
	ShippingAddressID uuid.UUID `json:"shipping_address_id" binding:"required"`
}

// PlaceOrder turns the user's validated cart into an order split by store.
func (oc *OrderController) PlaceOrder(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	var req PlaceOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, appErr := oc.checkoutService.PlaceOrder(ctx.Request.Context(), p.UserID, req.CartID, req.ShippingAddressID)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// GetOrders returns paginated orders for the authenticated user.
func (oc *OrderController) GetOrders(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	page, limit := parsePaginationParams(ctx)

	result, appErr := oc.checkoutService.GetUserOrders(ctx.Request.Context(), p.UserID, page, limit)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetOrderByID returns a specific order for the authenticated user.
func (oc *OrderController) GetOrderByID(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	orderID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID format"})
		return
	}

	order, appErr := oc.checkoutService.GetOrderByID(ctx.Request.Context(), p.UserID, orderID)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// GetStoreOrders returns the order groups of the seller's store.
func (oc *OrderController) GetStoreOrders(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	groups, appErr := oc.checkoutService.GetStoreOrders(ctx.Request.Context(), p.UserID, ctx.Param("storeUrl"))
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"orders": groups})
}
