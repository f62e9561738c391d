// internal/domain/checkout/manager.go
package checkout

import (
	"sync"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// Manager hands out one Pipeline per session, keyed by session id, so
// the one-shot Completed state survives across requests
type Manager struct {
	mu        sync.Mutex
	pipelines map[string]*Pipeline
	directory *user.Directory
	tokens    *auth.TokenIssuer
}

// NewManager creates a checkout pipeline manager
func NewManager(directory *user.Directory, tokens *auth.TokenIssuer) *Manager {
	return &Manager{
		pipelines: make(map[string]*Pipeline),
		directory: directory,
		tokens:    tokens,
	}
}

// Session returns the pipeline for a session, creating it on first access
func (m *Manager) Session(sessionID string, store *cart.Store) *Pipeline {
	m.mu.Lock()
	defer m.mu.Unlock()

	if pipeline, ok := m.pipelines[sessionID]; ok {
		return pipeline
	}
	pipeline := NewPipeline(store, m.directory, m.tokens)
	m.pipelines[sessionID] = pipeline
	return pipeline
}

// Reset discards a session's pipeline so a new order can be placed
func (m *Manager) Reset(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pipelines, sessionID)
}
