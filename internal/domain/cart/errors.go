// internal/domain/cart/errors.go
package cart

import "errors"

// Command errors. Each aborts its command with no state change and is
// reported synchronously to the caller; none is fatal to the session.
var (
	// ErrStockExceeded means the requested quantity exceeds the product's
	// available stock at command time.
	ErrStockExceeded = errors.New("requested quantity exceeds available stock")

	// ErrDuplicateAccount means sign-up found an existing account with the
	// same email in the user directory.
	ErrDuplicateAccount = errors.New("an account with this email already exists")

	// ErrItemNotFound means the command referenced a product id with no
	// line in the cart.
	ErrItemNotFound = errors.New("item not found in cart")

	// ErrInvalidQuantity means the requested quantity is below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
