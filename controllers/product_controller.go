package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Abdouxone/KFP/middleware"
	"github.com/Abdouxone/KFP/repository"
	"github.com/Abdouxone/KFP/services"
)

type ProductController struct {
	catalogService *services.CatalogService
	productService *services.ProductService
}

func NewProductController(catalogService *services.CatalogService, productService *services.ProductService) *ProductController {
	return &ProductController{
		catalogService: catalogService,
		productService: productService,
	}
}

// GetProducts returns the filtered, paginated public listing.
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	filter := repository.ProductFilter{
		CategoryURL:    ctx.Query("category"),
		SubCategoryURL: ctx.Query("subCategory"),
		StoreURL:       ctx.Query("store"),
	}
	page, limit := parsePaginationParams(ctx)

	result, appErr := pc.catalogService.GetProducts(ctx.Request.Context(), filter, page, limit)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetProductPage returns one variant's product page by slugs.
func (pc *ProductController) GetProductPage(ctx *gin.Context) {
	product, appErr := pc.catalogService.GetProductPageData(
		ctx.Request.Context(), ctx.Param("productSlug"), ctx.Param("variantSlug"))
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// GetStoreProducts returns every product of a store.
func (pc *ProductController) GetStoreProducts(ctx *gin.Context) {
	products, appErr := pc.catalogService.GetAllStoreProducts(ctx.Request.Context(), ctx.Param("storeUrl"))
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

// UpsertProduct creates a product or adds a variant to an existing one.
func (pc *ProductController) UpsertProduct(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	storeURL := ctx.Query("store")
	if storeURL == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Store URL is required"})
		return
	}

	var req services.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, appErr := pc.productService.UpsertProduct(ctx.Request.Context(), p.Role, &req, storeURL)
	if appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct removes a product and its variants.
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	p, err := middleware.GetPrincipal(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated."})
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	if appErr := pc.productService.DeleteProduct(ctx.Request.Context(), p.Role, productID); appErr != nil {
		respondError(ctx, appErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
