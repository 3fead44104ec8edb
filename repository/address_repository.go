package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abdouxone/KFP/models"
)

// AddressRepository defines the interface for shipping address data access.
type AddressRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]models.ShippingAddress, error)
	FindByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*models.ShippingAddress, error)
	Create(ctx context.Context, address *models.ShippingAddress) error
	FindAllWillayas(ctx context.Context) ([]models.Willaya, error)
}

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository.
func NewGormAddressRepository(db *gorm.DB) AddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) FindByUserID(ctx context.Context, userID string) ([]models.ShippingAddress, error) {
	var addresses []models.ShippingAddress
	err := r.db.WithContext(ctx).
		Preload("Willaya").
		Where("user_id = ?", userID).
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *GormAddressRepository) FindByIDAndUserID(ctx context.Context, id uuid.UUID, userID string) (*models.ShippingAddress, error) {
	var address models.ShippingAddress
	err := r.db.WithContext(ctx).
		Preload("Willaya").
		Where("id = ? AND user_id = ?", id, userID).
		First(&address).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *GormAddressRepository) Create(ctx context.Context, address *models.ShippingAddress) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *GormAddressRepository) FindAllWillayas(ctx context.Context) ([]models.Willaya, error) {
	var willayas []models.Willaya
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&willayas).Error; err != nil {
		return nil, err
	}
	return willayas, nil
}
