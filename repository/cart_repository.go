package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Abdouxone/KFP/models"
)

// CartRepository defines the interface for authoritative cart persistence.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Cart, error)
	// Replace deletes the user's existing cart row (items cascade) and writes
	// the new one. Full-replace semantics, never upsert-by-line.
	Replace(ctx context.Context, cart *models.Cart) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository.
func NewGormCartRepository(db *gorm.DB) CartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) FindByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("CartItems").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormCartRepository) Replace(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteCartForUser(tx, cart.UserID); err != nil {
			return err
		}
		return tx.Create(cart).Error
	})
}

func (r *GormCartRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteCartForUser(tx, userID)
	})
}

func deleteCartForUser(tx *gorm.DB, userID string) error {
	var existing models.Cart
	err := tx.Where("user_id = ?", userID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := tx.Where("cart_id = ?", existing.ID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&existing).Error
}
