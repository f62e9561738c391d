// internal/domain/cart/manager.go
package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/pricing"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Manager hands out one Store per session id. Stores are explicit
// containers passed by handle, never ambient globals, so sessions stay
// isolated from each other.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store

	directory *user.Directory
	calc      *pricing.Calculator
	snapshots storage.Store
	logger    *logrus.Logger
}

// NewManager creates a session store manager
func NewManager(directory *user.Directory, calc *pricing.Calculator, snapshots storage.Store, logger *logrus.Logger) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		directory: directory,
		calc:      calc,
		snapshots: snapshots,
		logger:    logger,
	}
}

// Session returns the store for a session id, creating and seeding it
// from persisted snapshots on first access. The store is seeded before
// it is published so no command can race the restore and be overwritten
// by the stale snapshot.
func (m *Manager) Session(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore(sessionID, m.directory, m.calc, m.snapshots, m.logger)
		store.Restore(ctx)
		m.stores[sessionID] = store
	}
	return store
}
