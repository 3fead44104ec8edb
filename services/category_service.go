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

// CategoryRequest is the admin-supplied category payload.
type CategoryRequest struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name" binding:"required"`
	Image    string    `json:"image"`
	URL      string    `json:"url" binding:"required"`
	Featured bool      `json:"featured"`
}

// CategoryService manages the platform-wide category taxonomy.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// UpsertCategory creates or updates a category after checking name/url
// uniqueness against every other category. Nothing is written on conflict.
func (s *CategoryService) UpsertCategory(ctx context.Context, role models.Role, req *CategoryRequest) (*models.Category, *apperrors.Error) {
	if !role.CanAdminister() {
		return nil, apperrors.Forbidden("Admin")
	}

	category := &models.Category{
		ID:       req.ID,
		Name:     req.Name,
		Image:    req.Image,
		URL:      req.URL,
		Featured: req.Featured,
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}

	existing, err := s.categoryRepo.FindCategoryConflict(ctx, category)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Failed to check category uniqueness", err)
	}
	if existing != nil {
		if existing.Name == category.Name {
			return nil, apperrors.Conflict("Category", "name")
		}
		return nil, apperrors.Conflict("Category", "URL")
	}

	if err := s.categoryRepo.UpsertCategory(ctx, category); err != nil {
		return nil, apperrors.Internal("Failed to save category", err)
	}
	return category, nil
}

// GetAllCategories lists every category.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, *apperrors.Error) {
	categories, err := s.categoryRepo.FindAllCategories(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch categories", err)
	}
	return categories, nil
}

// DeleteCategory removes a category.
func (s *CategoryService) DeleteCategory(ctx context.Context, role models.Role, id uuid.UUID) *apperrors.Error {
	if !role.CanAdminister() {
		return apperrors.Forbidden("Admin")
	}

	err := s.categoryRepo.DeleteCategory(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("Category")
	}
	if err != nil {
		return apperrors.Internal("Failed to delete category", err)
	}
	return nil
}
