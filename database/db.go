package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Abdouxone/KFP/models"
)

// Connect opens the single process-wide GORM connection pool. The handle is
// constructed once in main and passed down into repositories; nothing in the
// codebase reaches for a package-level instance.
func Connect(host, user, password, dbname, port, sslmode, timezone string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// Migrate runs auto-migration for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Willaya{},
		&models.ShippingAddress{},
		&models.Store{},
		&models.Category{},
		&models.SubCategory{},
		&models.Product{},
		&models.ProductVariant{},
		&models.VariantImage{},
		&models.Size{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderGroup{},
		&models.OrderItem{},
	)
}
