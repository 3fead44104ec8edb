package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Abdouxone/KFP/middleware"
	"github.com/Abdouxone/KFP/services"
)

type CategoryController struct {
	categoryService *services.CategoryService
}

func NewCategoryController(categoryService *services.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// UpsertCategory creates or updates a category.
func (cc *CategoryController) UpsertCategory(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	var req services.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	category, appErr := cc.categoryService.UpsertCategory(ctx.Request.Context(), p.Role, &req)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"category": category})
}

// GetCategories lists every category.
func (cc *CategoryController) GetCategories(ctx *gin.Context) {
	categories, appErr := cc.categoryService.GetAllCategories(ctx.Request.Context())
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

// DeleteCategory removes a category.
func (cc *CategoryController) DeleteCategory(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID format"})
		return
	}

	if appErr := cc.categoryService.DeleteCategory(ctx.Request.Context(), p.Role, id); appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
