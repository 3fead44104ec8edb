package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Abdouxone/KFP/controllers"
	"github.com/Abdouxone/KFP/middleware"
)

// Controllers groups everything the router wires up.
type Controllers struct {
	Cart        *controllers.CartController
	Order       *controllers.OrderController
	Product     *controllers.ProductController
	Category    *controllers.CategoryController
	SubCategory *controllers.SubCategoryController
	Store       *controllers.StoreController
	Address     *controllers.AddressController
	Webhook     *controllers.WebhookController
}

// Register mounts every route. Public catalog reads are unauthenticated;
// storefront actions need a principal; dashboard routes additionally need
// the seller or admin capability.
func Register(r *gin.Engine, c *Controllers, jwtSecret []byte) {
	rateLimit := middleware.RateLimitMiddleware()

	r.POST("/webhooks/identity", rateLimit, c.Webhook.HandleIdentityWebhook)

	// Public catalog
	r.GET("/products", c.Product.GetProducts)
	r.GET("/products/:productSlug/:variantSlug", c.Product.GetProductPage)
	r.GET("/stores/:storeUrl", c.Store.GetStore)
	r.GET("/stores/:storeUrl/products", c.Product.GetStoreProducts)
	r.GET("/categories", c.Category.GetCategories)
	r.GET("/subcategories", c.SubCategory.GetSubCategories)
	r.GET("/willayas", c.Address.GetWillayas)

	// Storefront (authenticated user)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(jwtSecret))
	{
		auth.GET("/cart", c.Cart.GetCart)
		auth.PUT("/cart", rateLimit, c.Cart.SaveCart)
		auth.DELETE("/cart", c.Cart.EmptyCart)

		auth.POST("/checkout", rateLimit, c.Order.PlaceOrder)
		auth.GET("/orders", c.Order.GetOrders)
		auth.GET("/orders/:id", c.Order.GetOrderByID)

		auth.GET("/addresses", c.Address.GetAddresses)
		auth.POST("/addresses", c.Address.CreateAddress)
	}

	// Seller dashboard
	seller := r.Group("/dashboard")
	seller.Use(middleware.AuthMiddleware(jwtSecret), middleware.RequireSeller())
	{
		seller.POST("/stores", rateLimit, c.Store.UpsertStore)
		seller.GET("/stores/:storeUrl/orders", c.Order.GetStoreOrders)
		seller.POST("/products", rateLimit, c.Product.UpsertProduct)
		seller.DELETE("/products/:id", c.Product.DeleteProduct)
	}

	// Admin dashboard
	admin := r.Group("/dashboard")
	admin.Use(middleware.AuthMiddleware(jwtSecret), middleware.RequireAdmin())
	{
		admin.POST("/categories", rateLimit, c.Category.UpsertCategory)
		admin.DELETE("/categories/:id", c.Category.DeleteCategory)
		admin.POST("/subcategories", rateLimit, c.SubCategory.UpsertSubCategory)
		admin.DELETE("/subcategories/:id", c.SubCategory.DeleteSubCategory)
	}
}
