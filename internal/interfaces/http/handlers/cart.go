// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	carts    *cart.Manager
	accessor catalog.Accessor
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Manager, accessor catalog.Accessor) *CartHandler {
	return &CartHandler{
		carts:    carts,
		accessor: accessor,
	}
}

// AddItemRequest represents the add to cart payload
type AddItemRequest struct {
	Slug     string `json:"slug" binding:"required"`
	Quantity int    `json:"quantity"`
}

// SetQuantityRequest represents the update quantity payload
type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.carts.Session(c.Request.Context(), middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"data": store.Cart(),
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	product, ok := h.accessor.ProductBySlug(req.Slug)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	store := h.carts.Session(c.Request.Context(), middleware.GetSessionID(c))
	err := store.Apply(c.Request.Context(), cart.AddItem{
		Product:  product,
		Quantity: req.Quantity,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    store.Cart(),
	})
}

// SetQuantity handles PUT /cart/items/:id
func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	store := h.carts.Session(c.Request.Context(), middleware.GetSessionID(c))
	err := store.Apply(c.Request.Context(), cart.SetQuantity{
		ProductID: c.Param("id"),
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    store.Cart(),
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	store := h.carts.Session(c.Request.Context(), middleware.GetSessionID(c))
	err := store.Apply(c.Request.Context(), cart.RemoveItem{
		ProductID: c.Param("id"),
	})
	if err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data":    store.Cart(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store := h.carts.Session(c.Request.Context(), middleware.GetSessionID(c))
	if err := store.Apply(c.Request.Context(), cart.ClearCart{}); err != nil {
		respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    store.Cart(),
	})
}

// respondCartError maps cart domain errors to HTTP responses
func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrStockExceeded):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Sorry. Product is out of stock",
		})
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be at least 1",
		})
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found in cart",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
	}
}
