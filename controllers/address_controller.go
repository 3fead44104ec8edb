package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdouxone/KFP/middleware"
	"github.com/Abdouxone/KFP/services"
)

type AddressController struct {
	addressService *services.AddressService
}

func NewAddressController(addressService *services.AddressService) *AddressController {
	return &AddressController{addressService: addressService}
}

// GetAddresses lists the user's shipping addresses.
func (ac *AddressController) GetAddresses(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	addresses, appErr := ac.addressService.GetUserShippingAddresses(ctx.Request.Context(), p.UserID)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

// CreateAddress stores a new shipping address for the user.
func (ac *AddressController) CreateAddress(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	var req services.AddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	address, appErr := ac.addressService.CreateShippingAddress(ctx.Request.Context(), p.UserID, &req)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"address": address})
}

// GetWillayas lists the selectable shipping regions.
func (ac *AddressController) GetWillayas(ctx *gin.Context) {
	willayas, appErr := ac.addressService.GetWillayas(ctx.Request.Context())
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"willayas": willayas})
}
