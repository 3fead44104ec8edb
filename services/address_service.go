package services

import (
	"context"

	"github.com/google/uuid"

	apperrors "github.com/Abdouxone/KFP/common/errors"
	"github.com/Abdouxone/KFP/models"
	"github.com/Abdouxone/KFP/repository"
)

// AddressRequest is one shipping address as submitted at checkout.
type AddressRequest struct {
	WillayaID uuid.UUID `json:"willaya_id" binding:"required"`
	Commune   string    `json:"commune" binding:"required"`
	FirstName string    `json:"first_name" binding:"required"`
	LastName  string    `json:"last_name" binding:"required"`
	Phone     string    `json:"phone" binding:"required"`
	Address   string    `json:"address" binding:"required"`
	Default   bool      `json:"default"`
}

// AddressService manages a user's shipping addresses.
type AddressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// GetUserShippingAddresses lists the user's addresses with their willayas.
func (s *AddressService) GetUserShippingAddresses(ctx context.Context, userID string) ([]models.ShippingAddress, *apperrors.Error) {
	addresses, err := s.addressRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch shipping addresses", err)
	}
	return addresses, nil
}

// CreateShippingAddress stores a new address for the user.
func (s *AddressService) CreateShippingAddress(ctx context.Context, userID string, req *AddressRequest) (*models.ShippingAddress, *apperrors.Error) {
	address := &models.ShippingAddress{
		ID:        uuid.New(),
		UserID:    userID,
		WillayaID: req.WillayaID,
		Commune:   req.Commune,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		Default:   req.Default,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, apperrors.Internal("Failed to save shipping address", err)
	}
	return address, nil
}

// GetWillayas lists the selectable shipping regions.
func (s *AddressService) GetWillayas(ctx context.Context) ([]models.Willaya, *apperrors.Error) {
	willayas, err := s.addressRepo.FindAllWillayas(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch willayas", err)
	}
	return willayas, nil
}
