package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abdouxone/KFP/models"
)

// OrderRepository defines the interface for order data access. The writer
// primitives (CreateOrder, CreateGroup, CreateItem, UpdateOrderTotal) are
// deliberately fine-grained so the checkout service controls write order;
// InTransaction binds them all to a single transaction.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateGroup(ctx context.Context, group *models.OrderGroup) error
	CreateItem(ctx context.Context, item *models.OrderItem) error
	UpdateOrderTotal(ctx context.Context, orderID uuid.UUID, total float64) error
	InTransaction(ctx context.Context, fn func(OrderRepository) error) error

	FindByIDAndUserID(ctx context.Context, orderID uuid.UUID, userID string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID string, page, limit int) ([]models.Order, int64, error)
	FindGroupsByStoreID(ctx context.Context, storeID uuid.UUID) ([]models.OrderGroup, error)
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new instance of GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) CreateGroup(ctx context.Context, group *models.OrderGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *GormOrderRepository) CreateItem(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormOrderRepository) UpdateOrderTotal(ctx context.Context, orderID uuid.UUID, total float64) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("total", total).Error
}

// InTransaction runs fn against a repository bound to one transaction.
func (r *GormOrderRepository) InTransaction(ctx context.Context, fn func(OrderRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormOrderRepository{db: tx})
	})
}

// FindByIDAndUserID retrieves a specific order for a user, groups and items
// included.
func (r *GormOrderRepository) FindByIDAndUserID(ctx context.Context, orderID uuid.UUID, userID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Groups.Items").
		Preload("Groups.Store").
		Preload("ShippingAddress.Willaya").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByUserID retrieves orders for a specific user with pagination.
func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID string, page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("Groups.Items").
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// FindGroupsByStoreID retrieves a store's order groups, most recently updated
// first, for the seller dashboard.
func (r *GormOrderRepository) FindGroupsByStoreID(ctx context.Context, storeID uuid.UUID) ([]models.OrderGroup, error) {
	var groups []models.OrderGroup
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("store_id = ?", storeID).
		Order("updated_at DESC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}
