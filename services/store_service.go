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

// StoreRequest is the seller-supplied store payload.
type StoreRequest struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Email       string    `json:"email" binding:"required,email"`
	Phone       string    `json:"phone" binding:"required"`
	URL         string    `json:"url" binding:"required"`
	Logo        string    `json:"logo"`
}

// StoreService manages seller stores.
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new StoreService.
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// UpsertStore creates or updates a seller's store. Name, email, phone and url
// are checked for collisions against every other store before anything is
// written, and the conflict names the offending field.
func (s *StoreService) UpsertStore(ctx context.Context, userID string, role models.Role, req *StoreRequest) (*models.Store, *apperrors.Error) {
	if !role.CanSell() {
		return nil, apperrors.Forbidden("Seller")
	}

	store := &models.Store{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Email:       req.Email,
		Phone:       req.Phone,
		URL:         req.URL,
		Logo:        req.Logo,
		UserID:      userID,
	}
	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}

	existing, err := s.storeRepo.FindConflict(ctx, store)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal("Failed to check store uniqueness", err)
	}
	if existing != nil {
		switch {
		case existing.Name == store.Name:
			return nil, apperrors.Conflict("Store", "name")
		case existing.Email == store.Email:
			return nil, apperrors.Conflict("Store", "email")
		case existing.Phone == store.Phone:
			return nil, apperrors.Conflict("Store", "phone number")
		default:
			return nil, apperrors.Conflict("Store", "url")
		}
	}

	if err := s.storeRepo.Upsert(ctx, store); err != nil {
		return nil, apperrors.Internal("Failed to save store", err)
	}
	return store, nil
}

// GetStoreByURL retrieves a store by its public url.
func (s *StoreService) GetStoreByURL(ctx context.Context, storeURL string) (*models.Store, *apperrors.Error) {
	store, err := s.storeRepo.FindByURL(ctx, storeURL)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Store")
	}
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch store", err)
	}
	return store, nil
}
