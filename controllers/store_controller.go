package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abdouxone/KFP/middleware"
	"github.com/Abdouxone/KFP/services"
)

type StoreController struct {
	storeService *services.StoreService
}

func NewStoreController(storeService *services.StoreService) *StoreController {
	return &StoreController{storeService: storeService}
}

// UpsertStore creates or updates the seller's store.
func (sc *StoreController) UpsertStore(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	var req services.StoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	store, appErr := sc.storeService.UpsertStore(ctx.Request.Context(), p.UserID, p.Role, &req)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"store": store})
}

// GetStore returns a store's public details by url.
func (sc *StoreController) GetStore(ctx *gin.Context) {
	store, appErr := sc.storeService.GetStoreByURL(ctx.Request.Context(), ctx.Param("storeUrl"))
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"store": store})
}
