// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
)

// SetupRoutes sets up all API routes
func SetupRoutes(rg *gin.RouterGroup, cfg *config.Config, accessor catalog.Accessor, carts *cart.Manager, pipelines *checkout.Manager) {
	SetupCatalogRoutes(rg, cfg, accessor)
	SetupCartRoutes(rg, carts, accessor)
	SetupAuthRoutes(rg, carts, pipelines)
	SetupCheckoutRoutes(rg, carts, pipelines)
}

// SetupCatalogRoutes sets up catalog browsing and search routes
func SetupCatalogRoutes(rg *gin.RouterGroup, cfg *config.Config, accessor catalog.Accessor) {
	catalogHandler := handlers.NewCatalogHandler(accessor, cfg)

	rg.GET("/products", catalogHandler.ListProducts)
	rg.GET("/products/:slug", catalogHandler.GetProduct)
	rg.GET("/search", catalogHandler.Search)
	rg.GET("/categories", catalogHandler.ListCategories)
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, carts *cart.Manager, accessor catalog.Accessor) {
	cartHandler := handlers.NewCartHandler(carts, accessor)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.SetQuantity)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
	}
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, carts *cart.Manager, pipelines *checkout.Manager) {
	authHandler := handlers.NewAuthHandler(carts, pipelines)

	auth := rg.Group("/auth")
	{
		auth.POST("/signin", authHandler.SignIn)
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/signout", authHandler.SignOut)
	}
}

// SetupCheckoutRoutes sets up checkout pipeline routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, carts *cart.Manager, pipelines *checkout.Manager) {
	checkoutHandler := handlers.NewCheckoutHandler(carts, pipelines)

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.GET("/:step", checkoutHandler.EnterStep)
		checkoutGroup.POST("/shipping", checkoutHandler.SubmitShipping)
		checkoutGroup.POST("/payment", checkoutHandler.SubmitPayment)
		checkoutGroup.POST("/placeorder", checkoutHandler.SubmitPlaceOrder)
	}
}
