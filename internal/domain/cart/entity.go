// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront/internal/domain/pricing"
)

// CartItem is one product line in a cart. A cart holds at most one line
// per product id; adding the same product again merges quantities.
type CartItem struct {
	ProductID    string  `json:"product_id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	CountInStock int     `json:"count_in_stock"`
}

// ShippingAddress is the delivery address collected during checkout
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Cart is an immutable snapshot of session cart state. The pricing
// fields are derived from the items on every read and never stored.
type Cart struct {
	Items           []CartItem       `json:"items"`
	ShippingAddress *ShippingAddress `json:"shipping_address,omitempty"`
	PaymentMethod   string           `json:"payment_method,omitempty"`
	Pricing         pricing.Amounts  `json:"pricing"`
}

// Lines converts the item list to pricing input
func (c Cart) Lines() []pricing.Line {
	lines := make([]pricing.Line, len(c.Items))
	for i, item := range c.Items {
		lines[i] = pricing.Line{Quantity: item.Quantity, UnitPrice: item.Price}
	}
	return lines
}
