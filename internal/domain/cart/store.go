// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/motoparts-backend/internal/pkg/kv"
)

// Store is the single source of truth for one session's shopping cart.
// It owns the in-memory line set, the merge/clamp rules applied on every
// add, and write-back to the key-value store.
//
// The stored baseline is read exactly once per store lifetime, and no
// write-back runs before that read completes. Mutations that arrive early
// trigger the load first, so they land on top of the saved baseline
// instead of flushing a default empty cart over it.
//
// Mutating operations never return errors: malformed input is coerced to
// safe defaults and persistence failures are logged, because the cart has
// to stay usable even when upstream data or storage misbehaves.
type Store struct {
	mu      sync.Mutex
	storage kv.Store
	logger  *logrus.Logger
	key     string

	ready bool
	lines []Line
}

// NewStore creates a cart store persisting under the given key.
// The stored cart is not read until the first operation needs it.
func NewStore(storage kv.Store, key string, logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Store{
		storage: storage,
		logger:  logger,
		key:     key,
		lines:   []Line{},
	}
}

// Load reads the persisted cart into memory. Safe to call more than once;
// only the first call touches storage. Operations call it implicitly, so
// invoking it up front is an optimization, not a requirement.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)
}

// load must be called with s.mu held. It establishes the ready gate:
// until it has run, persist is suppressed.
func (s *Store) load(ctx context.Context) {
	if s.ready {
		return
	}

	data, found, err := s.storage.Load(ctx, s.key)
	if err != nil {
		// Degrade to an empty cart. With storage unreachable the
		// subsequent saves fail too, so the saved baseline is not
		// at risk of being overwritten by this default.
		s.logger.WithError(err).WithField("key", s.key).Warn("Cart load failed, starting empty")
		s.ready = true
		return
	}

	if found {
		var lines []Line
		if unmarshalErr := json.Unmarshal([]byte(data), &lines); unmarshalErr != nil {
			// Corrupt payload counts as "no saved cart"
			s.logger.WithError(unmarshalErr).WithField("key", s.key).Warn("Discarding unreadable cart data")
			if delErr := s.storage.Delete(ctx, s.key); delErr != nil {
				s.logger.WithError(delErr).WithField("key", s.key).Warn("Failed to delete unreadable cart data")
			}
		} else {
			s.lines = sanitizeLines(lines)
		}
	}

	s.ready = true
}

// Add merges a candidate into the cart. At most one line exists per
// product id: a repeated add accumulates quantity and refreshes the
// snapshot fields (later snapshot wins, so a re-added item picks up the
// current price and image). When a stock bound is supplied and the
// accumulated quantity would exceed it, the quantity is clamped and the
// result is flagged so the surface can tell the user.
func (s *Store) Add(ctx context.Context, candidate Candidate, opts AddOptions) AddResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	addQty := candidate.Quantity
	if addQty < 1 {
		addQty = 1
	}

	unitPrice := candidate.UnitPrice
	if unitPrice.IsNegative() {
		unitPrice = decimal.Zero
	}

	bound := opts.MaxQuantity
	bounded := bound >= 1

	result := AddResult{}
	if bounded {
		result.Limit = bound
	}

	idx := s.indexOf(candidate.ProductID)
	if idx >= 0 {
		nextQty := s.lines[idx].Quantity + addQty
		if bounded && nextQty > bound {
			nextQty = bound
			result.Adjusted = true
		}

		s.lines[idx] = Line{
			ProductID: candidate.ProductID,
			Name:      candidate.Name,
			ImageURL:  candidate.ImageURL,
			PartNo:    candidate.PartNo,
			UnitPrice: unitPrice,
			Quantity:  nextQty,
		}
		result.Line = s.lines[idx]
	} else {
		initialQty := addQty
		if bounded && initialQty > bound {
			initialQty = bound
			result.Adjusted = true
		}

		line := Line{
			ProductID: candidate.ProductID,
			Name:      candidate.Name,
			ImageURL:  candidate.ImageURL,
			PartNo:    candidate.PartNo,
			UnitPrice: unitPrice,
			Quantity:  initialQty,
		}
		s.lines = append(s.lines, line)
		result.Line = line
	}

	s.persist(ctx)
	return result
}

// Remove deletes the line for a product id. Removing an id that is not
// present is a silent no-op; this is the only way a product leaves the
// cart, quantities are never decremented to zero.
func (s *Store) Remove(ctx context.Context, productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	idx := s.indexOf(productID)
	if idx >= 0 {
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	}

	s.persist(ctx)
}

// Clear empties the cart. The store itself stays alive for the session.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	s.lines = []Line{}
	s.persist(ctx)
}

// Lines returns a copy of the cart lines in stable insertion order.
// Callers must mutate the cart through Add/Remove/Clear only.
func (s *Store) Lines(ctx context.Context) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Totals returns the derived totals for display
func (s *Store) Totals(ctx context.Context) Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)

	return CalculateTotals(s.lines)
}

// indexOf must be called with s.mu held
func (s *Store) indexOf(productID uint) int {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// persist must be called with s.mu held. Writes observed before the
// initial load has completed are suppressed.
func (s *Store) persist(ctx context.Context) {
	if !s.ready {
		return
	}

	data, err := json.Marshal(s.lines)
	if err != nil {
		s.logger.WithError(err).WithField("key", s.key).Error("Failed to serialize cart")
		return
	}

	if err := s.storage.Save(ctx, s.key, string(data)); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Error("Failed to persist cart")
	}
}

// sanitizeLines re-establishes the line invariants on data loaded from
// storage: one line per product id (first occurrence wins, later
// duplicates fold in) and quantity at least 1.
func sanitizeLines(lines []Line) []Line {
	cleaned := make([]Line, 0, len(lines))
	seen := make(map[uint]int, len(lines))

	for _, line := range lines {
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		if line.UnitPrice.IsNegative() {
			line.UnitPrice = decimal.Zero
		}

		if idx, ok := seen[line.ProductID]; ok {
			cleaned[idx].Quantity += line.Quantity
			continue
		}

		seen[line.ProductID] = len(cleaned)
		cleaned = append(cleaned, line)
	}

	return cleaned
}
