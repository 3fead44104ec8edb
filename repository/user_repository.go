package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Abdouxone/KFP/models"
)

// UserRepository defines the interface for user data access. Users are synced
// from the identity provider, never created locally.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	// UpsertByEmail inserts the user or, when the email is already known,
	// refreshes the synced fields while keeping the locally assigned role.
	UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository.
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) UpsertByEmail(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "picture", "updated_at"}),
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}

	var synced models.User
	if err := r.db.WithContext(ctx).Where("email = ?", user.Email).First(&synced).Error; err != nil {
		return nil, err
	}
	return &synced, nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}
