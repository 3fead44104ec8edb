package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abdouxone/KFP/models"
)

// ProductFilter narrows the public product listing. URLs are resolved inside
// the repository so callers never deal in taxonomy ids.
type ProductFilter struct {
	CategoryURL    string
	SubCategoryURL string
	StoreURL       string
}

// CatalogRepository defines the interface for product catalog data access.
type CatalogRepository interface {
	// FindCartTriple loads a product with exactly the requested variant and
	// size attached. The variant and size filters are scoped to the product,
	// so a size id belonging to another variant resolves to an empty slice.
	FindCartTriple(ctx context.Context, productID, variantID, sizeID uuid.UUID) (*models.Product, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindProductPage(ctx context.Context, productSlug, variantSlug string) (*models.Product, error)
	FindProducts(ctx context.Context, filter ProductFilter, page, limit int) ([]models.Product, int64, error)
	FindStoreProducts(ctx context.Context, storeID uuid.UUID) ([]models.Product, error)
	ProductSlugExists(ctx context.Context, slug string) (bool, error)
	VariantSlugExists(ctx context.Context, slug string) (bool, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	CreateVariant(ctx context.Context, variant *models.ProductVariant) error
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
}

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GormCatalogRepository.
func NewGormCatalogRepository(db *gorm.DB) CatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) FindCartTriple(ctx context.Context, productID, variantID, sizeID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Store").
		Preload("Variants", "id = ?", variantID).
		Preload("Variants.Sizes", "id = ?", sizeID).
		Preload("Variants.Images").
		First(&product, "id = ?", productID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormCatalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormCatalogRepository) FindProductPage(ctx context.Context, productSlug, variantSlug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		Preload("Store").
		Preload("Variants", "slug = ?", variantSlug).
		Preload("Variants.Images").
		Preload("Variants.Sizes").
		First(&product, "slug = ?", productSlug).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormCatalogRepository) FindProducts(ctx context.Context, filter ProductFilter, page, limit int) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if filter.CategoryURL != "" {
		query = query.Where("category_id IN (?)",
			r.db.Model(&models.Category{}).Select("id").Where("url = ?", filter.CategoryURL))
	}
	if filter.SubCategoryURL != "" {
		query = query.Where("sub_category_id IN (?)",
			r.db.Model(&models.SubCategory{}).Select("id").Where("url = ?", filter.SubCategoryURL))
	}
	if filter.StoreURL != "" {
		query = query.Where("store_id IN (?)",
			r.db.Model(&models.Store{}).Select("id").Where("url = ?", filter.StoreURL))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	offset := (page - 1) * limit
	if err := query.
		Preload("Variants.Images").
		Preload("Variants.Sizes").
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *GormCatalogRepository) FindStoreProducts(ctx context.Context, storeID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("SubCategory").
		Preload("Variants.Images").
		Preload("Variants.Sizes").
		Where("store_id = ?", storeID).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormCatalogRepository) ProductSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *GormCatalogRepository) VariantSlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProductVariant{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

func (r *GormCatalogRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormCatalogRepository) CreateVariant(ctx context.Context, variant *models.ProductVariant) error {
	return r.db.WithContext(ctx).Create(variant).Error
}

// DeleteProduct removes a product and all of its variant children in one
// transaction, children first.
func (r *GormCatalogRepository) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var variantIDs []uuid.UUID
		if err := tx.Model(&models.ProductVariant{}).
			Where("product_id = ?", productID).
			Pluck("id", &variantIDs).Error; err != nil {
			return err
		}

		if len(variantIDs) > 0 {
			if err := tx.Where("product_variant_id IN ?", variantIDs).Delete(&models.Size{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_variant_id IN ?", variantIDs).Delete(&models.VariantImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", variantIDs).Delete(&models.ProductVariant{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Product{}, "id = ?", productID).Error
	})
}
