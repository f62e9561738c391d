// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// CatalogHandler handles catalog browsing and search endpoints
type CatalogHandler struct {
	accessor catalog.Accessor
	engine   *catalog.Engine
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(accessor catalog.Accessor, cfg *config.Config) *CatalogHandler {
	return &CatalogHandler{
		accessor: accessor,
		engine:   catalog.NewEngine(cfg.Search.PageSize),
	}
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.accessor.Products(),
	})
}

// GetProduct handles GET /products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, ok := h.accessor.ProductBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// Search handles GET /search
func (h *CatalogHandler) Search(c *gin.Context) {
	query := catalog.QueryFromParams(c.Request.URL.Query())
	result := h.engine.Search(h.accessor.Products(), query)

	c.JSON(http.StatusOK, gin.H{
		"data":  result,
		"query": query,
	})
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"categories": catalog.Categories(h.accessor.Products()),
			"prices":     catalog.PriceBuckets(),
			"ratings":    catalog.RatingThresholds(),
		},
	})
}
