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

// SubCategoryRequest is the admin-supplied subcategory payload.
type SubCategoryRequest struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name" binding:"required"`
	Image      string    `json:"image"`
	URL        string    `json:"url" binding:"required"`
	Featured   bool      `json:"featured"`
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
}

// SubCategoryService manages subcategories under the category taxonomy.
type SubCategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewSubCategoryService creates a new SubCategoryService.
func NewSubCategoryService(categoryRepo repository.CategoryRepository) *SubCategoryService {
	return &SubCategoryService{categoryRepo: categoryRepo}
}

// UpsertSubCategory creates or updates a subcategory with the same name/url
// pre-check as categories.
func (s *SubCategoryService) UpsertSubCategory(ctx context.Context, role models.Role, req *SubCategoryRequest) (*models.SubCategory, *apperrors.Error) {
	if !role.CanAdminister() {
		return nil, apperrors.Forbidden("Admin")
	}

	sub := &models.SubCategory{
		ID:         req.ID,
		Name:       req.Name,
		Image:      req.Image,
		URL:        req.URL,
		Featured:   req.Featured,
		CategoryID: req.CategoryID,
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}

	existing, err := s.categoryRepo.FindSubCategoryConflict(ctx, sub)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Failed to check subcategory uniqueness", err)
	}
	if existing != nil {
		if existing.Name == sub.Name {
			return nil, apperrors.Conflict("SubCategory", "name")
		}
		return nil, apperrors.Conflict("SubCategory", "URL")
	}

	if err := s.categoryRepo.UpsertSubCategory(ctx, sub); err != nil {
		return nil, apperrors.Internal("Failed to save subcategory", err)
	}
	return sub, nil
}

// GetAllSubCategories lists every subcategory with its parent category.
func (s *SubCategoryService) GetAllSubCategories(ctx context.Context) ([]models.SubCategory, *apperrors.Error) {
	subs, err := s.categoryRepo.FindAllSubCategories(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch subcategories", err)
	}
	return subs, nil
}

// DeleteSubCategory removes a subcategory.
func (s *SubCategoryService) DeleteSubCategory(ctx context.Context, role models.Role, id uuid.UUID) *apperrors.Error {
	if !role.CanAdminister() {
		return apperrors.Forbidden("Admin")
	}

	err := s.categoryRepo.DeleteSubCategory(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("SubCategory")
	}
	if err != nil {
		return apperrors.Internal("Failed to delete subcategory", err)
	}
	return nil
}
