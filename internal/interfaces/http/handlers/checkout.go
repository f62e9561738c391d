// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout pipeline endpoints
type CheckoutHandler struct {
	carts     *cart.Manager
	pipelines *checkout.Manager
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(carts *cart.Manager, pipelines *checkout.Manager) *CheckoutHandler {
	return &CheckoutHandler{
		carts:     carts,
		pipelines: pipelines,
	}
}

// PaymentRequest represents the select payment method payload
type PaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// EnterStep handles GET /checkout/:step
func (h *CheckoutHandler) EnterStep(c *gin.Context) {
	step, err := checkout.ParseStep(c.Param("step"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unknown checkout step",
		})
		return
	}

	pipeline := h.pipeline(c)
	decision := pipeline.Enter(step)
	if !decision.Allowed {
		payload := gin.H{
			"step":     step.String(),
			"allowed":  false,
			"redirect": decision.Redirect.String(),
		}
		if decision.Redirect == checkout.StepSignIn {
			payload["returnTo"] = decision.ReturnTo.String()
		}
		c.JSON(http.StatusOK, gin.H{"data": payload})
		return
	}

	store := h.carts.Session(c.Request.Context(), middleware.GetSessionID(c))
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"step":    step.String(),
			"allowed": true,
			"cart":    store.Cart(),
		},
	})
}

// SubmitShipping handles POST /checkout/shipping
func (h *CheckoutHandler) SubmitShipping(c *gin.Context) {
	var form checkout.ShippingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	pipeline := h.pipeline(c)
	next, err := pipeline.SubmitShipping(c.Request.Context(), form)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shipping address saved",
		"next":    next.String(),
	})
}

// SubmitPayment handles POST /checkout/payment
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	pipeline := h.pipeline(c)
	next, err := pipeline.SubmitPayment(c.Request.Context(), req.PaymentMethod)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment method selected",
		"next":    next.String(),
	})
}

// SubmitPlaceOrder handles POST /checkout/placeorder
func (h *CheckoutHandler) SubmitPlaceOrder(c *gin.Context) {
	store := h.carts.Session(c.Request.Context(), middleware.GetSessionID(c))
	pricing := store.Cart().Pricing

	pipeline := h.pipeline(c)
	next, err := pipeline.SubmitPlaceOrder(c.Request.Context())
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	// Completed is one-shot per order, not per session: the finished
	// pipeline is discarded so the next cart cycle starts fresh
	h.pipelines.Reset(middleware.GetSessionID(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"next":    next.String(),
		"pricing": pricing,
	})
}

// pipeline resolves the checkout pipeline for the request's session
func (h *CheckoutHandler) pipeline(c *gin.Context) *checkout.Pipeline {
	sessionID := middleware.GetSessionID(c)
	store := h.carts.Session(c.Request.Context(), sessionID)
	return h.pipelines.Session(sessionID, store)
}
