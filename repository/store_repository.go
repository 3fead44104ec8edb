package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Abdouxone/KFP/models"
)

// StoreRepository defines the interface for store data access.
type StoreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	FindByURL(ctx context.Context, url string) (*models.Store, error)
	// FindConflict returns another store sharing the candidate's name, email,
	// phone or url, or gorm.ErrRecordNotFound when the candidate is unique.
	FindConflict(ctx context.Context, store *models.Store) (*models.Store, error)
	Upsert(ctx context.Context, store *models.Store) error
}

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository.
func NewGormStoreRepository(db *gorm.DB) StoreRepository {
	return &GormStoreRepository{db: db}
}

func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *GormStoreRepository) FindByURL(ctx context.Context, url string) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).Where("url = ?", url).First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *GormStoreRepository) FindConflict(ctx context.Context, store *models.Store) (*models.Store, error) {
	var existing models.Store
	err := r.db.WithContext(ctx).
		Where("(name = ? OR email = ? OR phone = ? OR url = ?) AND id <> ?",
			store.Name, store.Email, store.Phone, store.URL, store.ID).
		First(&existing).Error
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *GormStoreRepository) Upsert(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(store).Error
}
