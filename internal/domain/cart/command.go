// internal/domain/cart/command.go
package cart

import (
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/user"
)

// Command is the closed set of session state transitions. Store.Apply
// handles every variant exhaustively; there is no string-tagged dispatch.
type Command interface {
	isCommand()
}

// AddItem merges a product into the cart. Quantity 0 requests the
// default increment: existing quantity + 1, or 1 for a new line.
type AddItem struct {
	Product  catalog.Product
	Quantity int
}

// RemoveItem removes the line for a product id
type RemoveItem struct {
	ProductID string
}

// SetQuantity replaces the quantity of an existing line
type SetQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart removes all cart items
type ClearCart struct{}

// SaveShippingAddress stores the checkout shipping address
type SaveShippingAddress struct {
	Address ShippingAddress
}

// SavePaymentMethod stores the selected payment method
type SavePaymentMethod struct {
	Method string
}

// SignIn replaces the user session
type SignIn struct {
	Session user.Session
}

// SignUp creates a session for a new account after checking the user
// directory for a duplicate email
type SignUp struct {
	Email   string
	Session user.Session
}

// SignOut destroys the session and discards the shipping address
type SignOut struct{}

func (AddItem) isCommand()             {}
func (RemoveItem) isCommand()          {}
func (SetQuantity) isCommand()         {}
func (ClearCart) isCommand()           {}
func (SaveShippingAddress) isCommand() {}
func (SavePaymentMethod) isCommand()   {}
func (SignIn) isCommand()              {}
func (SignUp) isCommand()              {}
func (SignOut) isCommand()             {}
