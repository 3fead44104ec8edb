package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Abdouxone/KFP/models"
)

// CategoryRepository defines the interface for category and subcategory data
// access.
type CategoryRepository interface {
	FindCategoryConflict(ctx context.Context, category *models.Category) (*models.Category, error)
	UpsertCategory(ctx context.Context, category *models.Category) error
	FindAllCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	FindSubCategoryConflict(ctx context.Context, sub *models.SubCategory) (*models.SubCategory, error)
	UpsertSubCategory(ctx context.Context, sub *models.SubCategory) error
	FindAllSubCategories(ctx context.Context) ([]models.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id uuid.UUID) error
}

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository.
func NewGormCategoryRepository(db *gorm.DB) CategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) FindCategoryConflict(ctx context.Context, category *models.Category) (*models.Category, error) {
	var existing models.Category
	err := r.db.WithContext(ctx).
		Where("(name = ? OR url = ?) AND id <> ?", category.Name, category.URL, category.ID).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *GormCategoryRepository) UpsertCategory(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(category).Error
}

func (r *GormCategoryRepository) FindAllCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormCategoryRepository) FindSubCategoryConflict(ctx context.Context, sub *models.SubCategory) (*models.SubCategory, error) {
	var existing models.SubCategory
	err := r.db.WithContext(ctx).
		Where("(name = ? OR url = ?) AND id <> ?", sub.Name, sub.URL, sub.ID).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *GormCategoryRepository) UpsertSubCategory(ctx context.Context, sub *models.SubCategory) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(sub).Error
}

func (r *GormCategoryRepository) FindAllSubCategories(ctx context.Context) ([]models.SubCategory, error) {
	var subs []models.SubCategory
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("name ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *GormCategoryRepository) DeleteSubCategory(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SubCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
