// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// AuthHandler handles sign-in, sign-up and sign-out endpoints
type AuthHandler struct {
	carts     *cart.Manager
	pipelines *checkout.Manager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(carts *cart.Manager, pipelines *checkout.Manager) *AuthHandler {
	return &AuthHandler{
		carts:     carts,
		pipelines: pipelines,
	}
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var form checkout.SignInForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	sessionID := middleware.GetSessionID(c)
	store := h.carts.Session(c.Request.Context(), sessionID)
	pipeline := h.pipelines.Session(sessionID, store)

	redirect, err := pipeline.SubmitSignIn(c.Request.Context(), form)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Signed in successfully",
		"redirect": redirect,
		"data":     store.Session(),
	})
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var form checkout.SignUpForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	sessionID := middleware.GetSessionID(c)
	store := h.carts.Session(c.Request.Context(), sessionID)
	pipeline := h.pipelines.Session(sessionID, store)

	redirect, err := pipeline.SubmitSignUp(c.Request.Context(), form)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Account created successfully",
		"redirect": redirect,
		"data":     store.Session(),
	})
}

// SignOut handles POST /auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	store := h.carts.Session(c.Request.Context(), sessionID)

	if err := store.SignOut(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to sign out",
		})
		return
	}

	// Cart items deliberately survive sign-out
	c.JSON(http.StatusOK, gin.H{
		"message": "Signed out successfully",
		"data":    store.Cart(),
	})
}

// respondCheckoutError maps checkout domain errors to HTTP responses
func respondCheckoutError(c *gin.Context, err error) {
	var fieldErrs checkout.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": fieldErrs,
		})
	case errors.Is(err, cart.ErrDuplicateAccount):
		c.JSON(http.StatusConflict, gin.H{
			"error": "An account with this email already exists",
		})
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Cart is empty",
		})
	case errors.Is(err, checkout.ErrOrderCompleted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order has already been placed",
		})
	case errors.Is(err, checkout.ErrSignInRequired),
		errors.Is(err, checkout.ErrShippingRequired),
		errors.Is(err, checkout.ErrPaymentRequired):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Checkout request failed",
		})
	}
}
