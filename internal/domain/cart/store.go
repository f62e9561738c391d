// internal/domain/cart/store.go
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/pricing"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Store is a session-scoped state container for cart items, shipping
// address, payment method and user session. All mutation goes through
// Apply; reads return immutable snapshots with pricing recomputed.
//
// Each successful command writes its logical snapshot(s) through to
// durable storage. A failed write is not fatal: in-memory state stays
// authoritative for the session and a warning is logged.
type Store struct {
	mu        sync.Mutex
	sessionID string

	items    []CartItem
	shipping *ShippingAddress
	payment  string
	session  *user.Session

	directory *user.Directory
	calc      *pricing.Calculator
	snapshots storage.Store
	logger    *logrus.Logger
}

// NewStore creates an empty store for a session. Use Restore to seed it
// from persisted snapshots.
func NewStore(sessionID string, directory *user.Directory, calc *pricing.Calculator, snapshots storage.Store, logger *logrus.Logger) *Store {
	return &Store{
		sessionID: sessionID,
		directory: directory,
		calc:      calc,
		snapshots: snapshots,
		logger:    logger,
	}
}

// Restore seeds initial state from persisted snapshots. It is called
// once, when the session store is created; reads never touch storage
// afterwards.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []CartItem
	if err := s.snapshots.Get(ctx, storage.CartItemsKey(s.sessionID), &items); err == nil {
		s.items = items
	} else if err != storage.ErrNotFound {
		s.warn(err, "cart items")
	}

	var shipping ShippingAddress
	if err := s.snapshots.Get(ctx, storage.ShippingAddressKey(s.sessionID), &shipping); err == nil {
		s.shipping = &shipping
	} else if err != storage.ErrNotFound {
		s.warn(err, "shipping address")
	}

	var session user.Session
	if err := s.snapshots.Get(ctx, storage.SessionKey(s.sessionID), &session); err == nil {
		s.session = &session
	} else if err != storage.ErrNotFound {
		s.warn(err, "user session")
	}
}

// Cart returns an immutable snapshot of the cart with pricing derived
// from the current items
func (s *Store) Cart() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Session returns a copy of the active user session, or nil when signed out
func (s *Store) Session() *user.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

// Apply executes one command as a single logical unit: validate, mutate,
// write through. Commands that fail validation leave state unchanged.
func (s *Store) Apply(ctx context.Context, cmd Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd := cmd.(type) {
	case AddItem:
		return s.addItem(ctx, cmd)
	case RemoveItem:
		return s.removeItem(ctx, cmd)
	case SetQuantity:
		return s.setQuantity(ctx, cmd)
	case ClearCart:
		return s.clearCart(ctx)
	case SaveShippingAddress:
		return s.saveShippingAddress(ctx, cmd)
	case SavePaymentMethod:
		s.payment = cmd.Method
		return nil
	case SignIn:
		return s.signIn(ctx, cmd.Session)
	case SignUp:
		return s.signUp(ctx, cmd)
	case SignOut:
		return s.signOut(ctx)
	default:
		return fmt.Errorf("unhandled command %T", cmd)
	}
}

// Convenience wrappers over Apply

// AddItem merges a product into the cart with the default increment
func (s *Store) AddItem(ctx context.Context, product catalog.Product) error {
	return s.Apply(ctx, AddItem{Product: product})
}

// SignOut destroys the session and discards the shipping address
func (s *Store) SignOut(ctx context.Context) error {
	return s.Apply(ctx, SignOut{})
}

// Command handlers. Callers hold s.mu.

func (s *Store) addItem(ctx context.Context, cmd AddItem) error {
	existing := -1
	for i, item := range s.items {
		if item.ProductID == cmd.Product.ID {
			existing = i
			break
		}
	}

	requested := cmd.Quantity
	if requested == 0 {
		if existing >= 0 {
			requested = s.items[existing].Quantity + 1
		} else {
			requested = 1
		}
	}
	if requested < 1 {
		return ErrInvalidQuantity
	}

	// Soft stock guard: checked against the catalog at command time only
	if requested > cmd.Product.CountInStock {
		return ErrStockExceeded
	}

	if existing >= 0 {
		s.items[existing].Quantity = requested
		s.items[existing].Price = cmd.Product.Price
	} else {
		s.items = append(s.items, CartItem{
			ProductID:    cmd.Product.ID,
			Slug:         cmd.Product.Slug,
			Name:         cmd.Product.Name,
			Image:        cmd.Product.Image,
			Price:        cmd.Product.Price,
			Quantity:     requested,
			CountInStock: cmd.Product.CountInStock,
		})
	}

	s.persistItems(ctx)
	return nil
}

func (s *Store) removeItem(ctx context.Context, cmd RemoveItem) error {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != cmd.ProductID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persistItems(ctx)
	return nil
}

func (s *Store) setQuantity(ctx context.Context, cmd SetQuantity) error {
	if cmd.Quantity < 1 {
		return ErrInvalidQuantity
	}
	for i, item := range s.items {
		if item.ProductID != cmd.ProductID {
			continue
		}
		if cmd.Quantity > item.CountInStock {
			return ErrStockExceeded
		}
		s.items[i].Quantity = cmd.Quantity
		s.persistItems(ctx)
		return nil
	}
	return ErrItemNotFound
}

func (s *Store) clearCart(ctx context.Context) error {
	s.items = nil
	if err := s.snapshots.Delete(ctx, storage.CartItemsKey(s.sessionID)); err != nil {
		s.warn(err, "cart items")
	}
	return nil
}

func (s *Store) saveShippingAddress(ctx context.Context, cmd SaveShippingAddress) error {
	address := cmd.Address
	s.shipping = &address
	if err := s.snapshots.Put(ctx, storage.ShippingAddressKey(s.sessionID), address); err != nil {
		s.warn(err, "shipping address")
	}
	return nil
}

func (s *Store) signIn(ctx context.Context, session user.Session) error {
	s.session = &session
	if err := s.snapshots.Put(ctx, storage.SessionKey(s.sessionID), session); err != nil {
		s.warn(err, "user session")
	}
	return nil
}

func (s *Store) signUp(ctx context.Context, cmd SignUp) error {
	if _, exists := s.directory.FindByEmail(cmd.Email); exists {
		return ErrDuplicateAccount
	}
	return s.signIn(ctx, cmd.Session)
}

// signOut removes the session and shipping-address snapshots. Cart items
// deliberately survive sign-out, in memory and in storage.
func (s *Store) signOut(ctx context.Context) error {
	s.session = nil
	s.shipping = nil
	if err := s.snapshots.Delete(ctx, storage.SessionKey(s.sessionID)); err != nil {
		s.warn(err, "user session")
	}
	if err := s.snapshots.Delete(ctx, storage.ShippingAddressKey(s.sessionID)); err != nil {
		s.warn(err, "shipping address")
	}
	return nil
}

func (s *Store) persistItems(ctx context.Context) {
	if err := s.snapshots.Put(ctx, storage.CartItemsKey(s.sessionID), s.items); err != nil {
		s.warn(err, "cart items")
	}
}

func (s *Store) snapshotLocked() Cart {
	items := make([]CartItem, len(s.items))
	copy(items, s.items)

	cart := Cart{
		Items:         items,
		PaymentMethod: s.payment,
	}
	if s.shipping != nil {
		shipping := *s.shipping
		cart.ShippingAddress = &shipping
	}
	cart.Pricing = s.calc.Price(cart.Lines())
	return cart
}

func (s *Store) warn(err error, snapshot string) {
	s.logger.WithFields(logrus.Fields{
		"session_id": s.sessionID,
		"snapshot":   snapshot,
	}).WithError(err).Warn("snapshot storage failed; in-memory state remains authoritative")
}
