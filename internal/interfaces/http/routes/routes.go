// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/saree-storefront/internal/config"
	"github.com/your-org/saree-storefront/internal/domain/order"
	"github.com/your-org/saree-storefront/internal/domain/session"
	"github.com/your-org/saree-storefront/internal/interfaces/http/handlers"
	"github.com/your-org/saree-storefront/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// Deps carries the shared collaborators handed to every route group
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Logger   *logrus.Logger
	Sessions *session.Manager
	Orders   *order.Service
}

// SetupRoutes wires all API route groups
func SetupRoutes(rg *gin.RouterGroup, deps Deps) {
	SetupAuthRoutes(rg, deps)
	SetupCatalogRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupWishlistRoutes(rg, deps)
	SetupOrderRoutes(rg, deps)
	SetupAdminRoutes(rg, deps)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, deps Deps) {
	authHandler := handlers.NewAuthHandler(deps.DB, deps.Sessions, deps.Config, deps.Logger)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}
}

// SetupCatalogRoutes sets up the public catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, deps Deps) {
	productHandler := handlers.NewProductHandler(deps.DB)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
	}
}

// SetupCartRoutes sets up the session cart routes. The cart works for both
// guest and authenticated sessions; identity lives in the session itself.
func SetupCartRoutes(rg *gin.RouterGroup, deps Deps) {
	cartHandler := handlers.NewCartHandler(deps.Sessions)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:productId", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:productId", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// SetupWishlistRoutes sets up the session wishlist routes
func SetupWishlistRoutes(rg *gin.RouterGroup, deps Deps) {
	wishlistHandler := handlers.NewWishlistHandler(deps.Sessions)

	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("/items", wishlistHandler.AddToWishlist)
		wishlist.DELETE("/items/:productId", wishlistHandler.RemoveFromWishlist)
		wishlist.DELETE("", wishlistHandler.ClearWishlist)
		wishlist.GET("/contains/:productId", wishlistHandler.Contains)
		wishlist.POST("/items/:productId/move-to-cart", wishlistHandler.MoveToCart)
	}
}

// SetupOrderRoutes sets up customer order placement
func SetupOrderRoutes(rg *gin.RouterGroup, deps Deps) {
	orderHandler := handlers.NewOrderHandler(deps.DB, deps.Orders, deps.Config, deps.Logger)

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.Create)
	}
}

// SetupAdminRoutes sets up the admin dashboard routes
func SetupAdminRoutes(rg *gin.RouterGroup, deps Deps) {
	productHandler := handlers.NewProductHandler(deps.DB)
	orderHandler := handlers.NewOrderHandler(deps.DB, deps.Orders, deps.Config, deps.Logger)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.Config))
	admin.Use(middleware.AdminMiddleware())
	{
		products := admin.Group("/products")
		{
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderHandler.List)
			orders.GET("/stats", orderHandler.Stats)
			orders.GET("/:id", orderHandler.Get)
			orders.PUT("/:id", orderHandler.Update)
			orders.GET("/:id/invoice", orderHandler.Invoice)
		}
	}
}
