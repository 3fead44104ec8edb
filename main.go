package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Abdouxone/KFP/common/logger"
	"github.com/Abdouxone/KFP/controllers"
	"github.com/Abdouxone/KFP/database"
	"github.com/Abdouxone/KFP/repository"
	"github.com/Abdouxone/KFP/routes"
	"github.com/Abdouxone/KFP/services"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic("invalid configuration: " + err.Error())
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	db, err := database.Connect(
		cfg.PostgresHost, cfg.PostgresUser, cfg.PostgresPassword,
		cfg.PostgresDB, cfg.PostgresPort, cfg.PostgresSSLMode, cfg.PostgresTimeZone,
	)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}

	// The cart cache is optional; the service falls back to Postgres when
	// redis is unreachable at startup.
	var cartCache *repository.CartCache
	if redisClient, err := database.NewRedisClient(cfg.RedisURL); err != nil {
		logger.Warn(context.Background(), "Cart cache disabled", zap.Error(err))
	} else {
		cartCache = repository.NewCartCache(redisClient, cfg.CartCacheTTL)
	}

	// Repositories
	catalogRepo := repository.NewGormCatalogRepository(db)
	cartRepo := repository.NewGormCartRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	storeRepo := repository.NewGormStoreRepository(db)
	categoryRepo := repository.NewGormCategoryRepository(db)
	userRepo := repository.NewGormUserRepository(db)
	addressRepo := repository.NewGormAddressRepository(db)

	// Services
	catalogService := services.NewCatalogService(catalogRepo, storeRepo)
	cartService := services.NewCartService(catalogService, cartRepo, cartCache)
	checkoutService := services.NewCheckoutService(orderRepo, cartRepo, cartService, addressRepo, storeRepo)
	storeService := services.NewStoreService(storeRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	subCategoryService := services.NewSubCategoryService(categoryRepo)
	productService := services.NewProductService(catalogRepo, storeRepo)
	userService := services.NewUserService(userRepo)
	addressService := services.NewAddressService(addressRepo)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger())

	routes.Register(r, &routes.Controllers{
		Cart:        controllers.NewCartController(cartService),
		Order:       controllers.NewOrderController(checkoutService),
		Product:     controllers.NewProductController(catalogService, productService),
		Category:    controllers.NewCategoryController(categoryService),
		SubCategory: controllers.NewSubCategoryController(subCategoryService),
		Store:       controllers.NewStoreController(storeService),
		Address:     controllers.NewAddressController(addressService),
		Webhook:     controllers.NewWebhookController(userService, []byte(cfg.WebhookSecret)),
	}, []byte(cfg.JWTSecret))

	logger.Log.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
