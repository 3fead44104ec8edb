package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	apperrors "github.com/Abdouxone/KFP/common/errors"
	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/repository"
)

// ProductRequest carries one product-with-variant payload from the seller
// dashboard. Upserting against an existing product id adds a variant to it;
// otherwise a new product is created with this as its first variant.
type ProductRequest struct {
	ProductID          uuid.UUID      `json:"product_id"`
	VariantID          uuid.UUID      `json:"variant_id"`
	Name               string         `json:"name" binding:"required"`
	Description        string         `json:"description"`
	Brand              string         `json:"brand"`
	CategoryID         uuid.UUID      `json:"category_id" binding:"required"`
	SubCategoryID      uuid.UUID      `json:"sub_category_id" binding:"required"`
	VariantName        string         `json:"variant_name" binding:"required"`
	VariantDescription string         `json:"variant_description"`
	SKU                string         `json:"sku" binding:"required"`
	Keywords           []string       `json:"keywords"`
	IsSale             bool           `json:"is_sale"`
	SaleEndDate        string         `json:"sale_end_date"`
	VariantImage       string         `json:"variant_image"`
	Images             []ImageRequest `json:"images"`
	Sizes              []SizeRequest  `json:"sizes" binding:"required,dive"`
}

type ImageRequest struct {
	URL string `json:"url" binding:"required"`
}

type SizeRequest struct {
	Size     string  `json:"size" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=0"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Discount float64 `json:"discount" binding:"min=0,max=100"`
}

// ProductService manages seller products and variants.
type ProductService struct {
	catalogRepo repository.CatalogRepository
	storeRepo   repository.StoreRepository
}

// NewProductService creates a new ProductService.
func NewProductService(catalogRepo repository.CatalogRepository, storeRepo repository.StoreRepository) *ProductService {
	return &ProductService{
		catalogRepo: catalogRepo,
		storeRepo:   storeRepo,
	}
}

// UpsertProduct creates a product with its first variant, or adds a variant
// to an existing product. Slugs are generated from the names and probed for
// uniqueness before use.
func (s *ProductService) UpsertProduct(ctx context.Context, role models.Role, req *ProductRequest, storeURL string) (*models.Product, *apperrors.Error) {
	if !role.CanSell() {
		return nil, apperrors.Forbidden("Seller")
	}

	store, err := s.storeRepo.FindByURL(ctx, storeURL)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Store")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch store", err)
	}

	variantSlug, err := uniqueSlug(ctx, slug.Make(req.VariantName), s.catalogRepo.VariantSlugExists)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate variant slug", err)
	}

	variant := models.ProductVariant{
		ID:                 req.VariantID,
		VariantName:        req.VariantName,
		VariantDescription: req.VariantDescription,
		Slug:               variantSlug,
		SKU:                req.SKU,
		Keywords:           strings.Join(req.Keywords, ","),
		IsSale:             req.IsSale,
		SaleEndDate:        req.SaleEndDate,
		VariantImage:       req.VariantImage,
	}
	if variant.ID == uuid.Nil {
		variant.ID = uuid.New()
	}
	for _, img := range req.Images {
		alt := img.URL
		if i := strings.LastIndex(img.URL, "/"); i >= 0 {
			alt = img.URL[i+1:]
		}
		variant.Images = append(variant.Images, models.VariantImage{URL: img.URL, Alt: alt})
	}
	for _, size := range req.Sizes {
		variant.Sizes = append(variant.Sizes, models.Size{
			Size:     size.Size,
			Quantity: size.Quantity,
			Price:    size.Price,
			Discount: size.Discount,
		})
	}

	// Existing product: attach the new variant to it.
	existing, err := s.catalogRepo.FindProductByID(ctx, req.ProductID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Failed to fetch product", err)
	}
	if existing != nil {
		variant.ProductID = existing.ID
		if err := s.catalogRepo.CreateVariant(ctx, &variant); err != nil {
			return nil, apperrors.Internal("Failed to save product variant", err)
		}
		existing.Variants = append(existing.Variants, variant)
		return existing, nil
	}

	productSlug, err := uniqueSlug(ctx, slug.Make(req.Name), s.catalogRepo.ProductSlugExists)
	if err != nil {
		return nil, apperrors.Internal("Failed to generate product slug", err)
	}

	product := &models.Product{
		ID:            req.ProductID,
		Name:          req.Name,
		Description:   req.Description,
		Slug:          productSlug,
		Brand:         req.Brand,
		CategoryID:    req.CategoryID,
		SubCategoryID: req.SubCategoryID,
		StoreID:       store.ID,
		Variants:      []models.ProductVariant{variant},
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	if err := s.catalogRepo.CreateProduct(ctx, product); err != nil {
		return nil, apperrors.Internal("Failed to save product", err)
	}
	return product, nil
}

// DeleteProduct removes a product and all of its variants.
func (s *ProductService) DeleteProduct(ctx context.Context, role models.Role, productID uuid.UUID) *apperrors.Error {
	if !role.CanSell() {
		return apperrors.Forbidden("Seller")
	}

	if _, err := s.catalogRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Product")
		}
		return apperrors.Internal("Failed to fetch product", err)
	}

	if err := s.catalogRepo.DeleteProduct(ctx, productID); err != nil {
		return apperrors.Internal("Failed to delete product", err)
	}
	return nil
}

// uniqueSlug probes base, base-2, base-3, … until an unused slug is found.
func uniqueSlug(ctx context.Context, base string, exists func(context.Context, string) (bool, error)) (string, error) {
	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
