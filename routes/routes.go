package routes

import (
	"furnico-backend/cart"
	"furnico-backend/handlers"
	"furnico-backend/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes registers the storefront API. authLimiter throttles the
// register and login endpoints.
func SetupRoutes(r *gin.Engine, db *gorm.DB, authLimiter *middleware.RateLimiter) {
	cartEngine := cart.NewEngine(cart.NewGormStore(db), cart.NewGormCatalog(db), zap.L().Named("cart"))

	authHandler := &handlers.AuthHandler{DB: db}
	productHandler := &handlers.ProductHandler{DB: db}
	categoryHandler := &handlers.CategoryHandler{DB: db}
	landingHandler := &handlers.LandingHandler{DB: db}
	cartHandler := &handlers.CartHandler{Engine: cartEngine}

	// Public routes
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(authLimiter.Middleware())
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		api.GET("/landing", landingHandler.GetLanding)

		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/:slug", productHandler.GetProduct)

		api.GET("/categories", categoryHandler.GetCategories)
		api.GET("/categories/:slug", categoryHandler.GetCategory)
		api.GET("/categories/:slug/products", productHandler.GetProductsByCategory)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)

		protected.GET("/cart", cartHandler.GetCart)
		protected.POST("/cart", cartHandler.AddToCart)
		protected.PUT("/cart/:id", cartHandler.UpdateCartItem)
		protected.DELETE("/cart/:id", cartHandler.RemoveFromCart)
		protected.DELETE("/cart", cartHandler.ClearCart)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
