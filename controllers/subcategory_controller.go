package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Abdouxone/KFP/middleware"
	"github.com/Abdouxone/KFP/services"
)

type SubCategoryController struct {
	subCategoryService *services.SubCategoryService
}

func NewSubCategoryController(subCategoryService *services.SubCategoryService) *SubCategoryController {
	return &SubCategoryController{subCategoryService: subCategoryService}
}

// UpsertSubCategory creates or updates a subcategory.
func (sc *SubCategoryController) UpsertSubCategory(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	var req services.SubCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	sub, appErr := sc.subCategoryService.UpsertSubCategory(ctx.Request.Context(), p.Role, &req)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"sub_category": sub})
}

// GetSubCategories lists every subcategory.
func (sc *SubCategoryController) GetSubCategories(ctx *gin.Context) {
	subs, appErr := sc.subCategoryService.GetAllSubCategories(ctx.Request.Context())
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"sub_categories": subs})
}

// DeleteSubCategory removes a subcategory.
func (sc *SubCategoryController) DeleteSubCategory(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID format"})
		return
	}

	if appErr := sc.subCategoryService.DeleteSubCategory(ctx.Request.Context(), p.Role, id); appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "SubCategory deleted"})
}
