// internal/domain/cart/manager.go
package cart

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/motoparts-backend/internal/pkg/kv"
)

// Manager hands out one Store per shopping session. It is constructed
// once at application root and threaded to the HTTP layer, so every
// surface operating on the same session sees the same cart instance.
type Manager struct {
	mu        sync.Mutex
	storage   kv.Store
	logger    *logrus.Logger
	keyPrefix string
	stores    map[string]*Store
}

// NewManager creates a session cart manager persisting carts under
// keyPrefix + session id.
func NewManager(storage kv.Store, keyPrefix string, logger *logrus.Logger) *Manager {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Manager{
		storage:   storage,
		logger:    logger,
		keyPrefix: keyPrefix,
		stores:    make(map[string]*Store),
	}
}

// Session returns the cart store for a session id, creating it empty on
// first access. The store lives for the rest of the process; its saved
// baseline is read lazily on first use.
func (m *Manager) Session(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore(m.storage, m.keyPrefix+sessionID, m.logger)
		m.stores[sessionID] = store
	}
	return store
}
