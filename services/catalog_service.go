package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/Abdouxone/KFP/common/errors"
	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/repository"
)

// ResolvedCartLine is the authoritative catalog state for one
// (product, variant, size) triple at resolution time. Price already has the
// size's discount applied.
type ResolvedCartLine struct {
	ProductID   uuid.UUID
	VariantID   uuid.UUID
	SizeID      uuid.UUID
	StoreID     uuid.UUID
	ProductSlug string
	VariantSlug string
	SKU         string
	Name        string
	Image       string
	Size        string
	Stock       int
	Price       float64
}

// ProductListResponse is the paginated public product listing.
type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Meta     MetaData         `json:"meta"`
}

// MetaData carries pagination metadata.
type MetaData struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"total_count"`
	TotalPages int64 `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// CatalogService reads the product catalog. It is the single authority the
// cart validator consults; client-held snapshots are never trusted.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	storeRepo   repository.StoreRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository, storeRepo repository.StoreRepository) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		storeRepo:   storeRepo,
	}
}

// ResolveCartTriple looks up the product, the variant scoped to that product,
// and the size scoped to that variant. A missing product, variant or size all
// collapse into the same not-found error naming the full triple.
func (s *CatalogService) ResolveCartTriple(ctx context.Context, productID, variantID, sizeID uuid.UUID) (*ResolvedCartLine, *apperrors.Error) {
	product, err := s.catalogRepo.FindCartTriple(ctx, productID, variantID, sizeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Failed to resolve catalog item", err)
	}
	if err != nil || len(product.Variants) == 0 || len(product.Variants[0].Sizes) == 0 {
		return nil, apperrors.NotFoundf(
			"Invalid product, variant, or size combination for productId %s, variantId %s, and sizeId %s.",
			productID, variantID, sizeID)
	}

	variant := product.Variants[0]
	size := variant.Sizes[0]

	image := variant.VariantImage
	if len(variant.Images) > 0 {
		image = variant.Images[0].URL
	}

	return &ResolvedCartLine{
		ProductID:   product.ID,
		VariantID:   variant.ID,
		SizeID:      size.ID,
		StoreID:     product.StoreID,
		ProductSlug: product.Slug,
		VariantSlug: variant.Slug,
		SKU:         variant.SKU,
		Name:        product.Name + " · " + variant.VariantName,
		Image:       image,
		Size:        size.Size,
		Stock:       size.Quantity,
		Price:       size.DiscountedPrice(),
	}, nil
}

// GetProducts returns the filtered, paginated public listing.
func (s *CatalogService) GetProducts(ctx context.Context, filter repository.ProductFilter, page, limit int) (*ProductListResponse, *apperrors.Error) {
	products, total, err := s.catalogRepo.FindProducts(ctx, filter, page, limit)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch products", err)
	}

	return &ProductListResponse{
		Products: products,
		Meta: MetaData{
			Page:       page,
			Limit:      limit,
			TotalCount: total,
			TotalPages: calculateTotalPages(total, limit),
			HasMore:    total > int64(page*limit),
		},
	}, nil
}

// GetProductPageData retrieves one variant's product page by slugs.
func (s *CatalogService) GetProductPageData(ctx context.Context, productSlug, variantSlug string) (*models.Product, *apperrors.Error) {
	product, err := s.catalogRepo.FindProductPage(ctx, productSlug, variantSlug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Product")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch product", err)
	}
	if len(product.Variants) == 0 {
		return nil, apperrors.NotFound("Product variant")
	}
	return product, nil
}

// GetAllStoreProducts retrieves every product of the store behind storeURL.
func (s *CatalogService) GetAllStoreProducts(ctx context.Context, storeURL string) ([]models.Product, *apperrors.Error) {
	store, err := s.storeRepo.FindByURL(ctx, storeURL)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Validation("Please provide a valid Store URL.")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch store", err)
	}

	products, err := s.catalogRepo.FindStoreProducts(ctx, store.ID)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch store products", err)
	}
	return products, nil
}

// GetProductMainInfo retrieves the descriptive fields of a single product.
func (s *CatalogService) GetProductMainInfo(ctx context.Context, productID uuid.UUID) (*models.Product, *apperrors.Error) {
	product, err := s.catalogRepo.FindProductByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Product")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch product", err)
	}
	return product, nil
}

func calculateTotalPages(total int64, limit int) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
