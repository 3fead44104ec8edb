package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdouxone/KFP/middleware"
	"github.com/Abdouxone/KFP/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// SaveCart revalidates the submitted lines against the catalog and replaces
// the user's stored cart with the result.
func (cc *CartController) SaveCart(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	var lines []services.CartLineRequest
	if err := ctx.ShouldBindJSON(&lines); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	cart, appErr := cc.cartService.SaveUserCart(ctx.Request.Context(), p.UserID, lines)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"cart": cart})
}

// GetCart returns the user's authoritative cart.
func (cc *CartController) GetCart(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	cart, appErr := cc.cartService.GetUserCart(ctx.Request.Context(), p.UserID)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"cart": cart})
}

// EmptyCart drops the user's cart.
func (cc *CartController) EmptyCart(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	if appErr := cc.cartService.EmptyUserCart(ctx.Request.Context(), p.UserID); appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Cart emptied"})
}
