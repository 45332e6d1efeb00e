package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mallcloud/mallctl/internal/domain"
	"github.com/mallcloud/mallctl/internal/ports"
)

// StorageKeyCartItems is the durable storage key holding the cart lines.
const StorageKeyCartItems = "cart_items"

// CartStore owns the persisted list of cart lines for the active client.
// Every mutation is applied atomically under the mutex and written through
// to storage before the call returns.
//
// Mutations addressed by line id are silent no-ops when the target is gone:
// overlapping UI actions such as remove-then-edit are an expected race, not
// an error.
type CartStore struct {
	mu      sync.Mutex
	items   []domain.CartItem
	storage ports.KVStore
}

// NewCartStore restores the cart from storage. A missing key yields an
// empty cart.
func NewCartStore(ctx context.Context, storage ports.KVStore) (*CartStore, error) {
	store := &CartStore{storage: storage}

	data, err := storage.Get(ctx, StorageKeyCartItems)
	if err != nil {
		if errors.Is(err, ports.ErrKeyNotFound) {
			return store, nil
		}
		return nil, fmt.Errorf("restore cart items: %w", err)
	}

	if err := json.Unmarshal(data, &store.items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}

	return store, nil
}

// Add merges the candidate into the line with the same dedupe key, or
// appends it as a new selected line. Merging accumulates quantity without
// clamping; the clamp applies on explicit quantity edits.
func (s *CartStore) Add(ctx context.Context, candidate domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := candidate.DedupeKey()
	for i := range s.items {
		if s.items[i].DedupeKey() == key {
			s.items[i].Quantity += candidate.Quantity
			return s.persistLocked(ctx)
		}
	}

	if candidate.ID == 0 {
		candidate.ID = s.nextIDLocked()
	}
	candidate.Selected = true
	s.items = append(s.items, candidate)

	return s.persistLocked(ctx)
}

// UpdateQuantity clamps the requested quantity to [1, stock] for the line
// with the given id.
func (s *CartStore) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = domain.ClampQuantity(quantity, s.items[i].Stock)
			return s.persistLocked(ctx)
		}
	}

	return nil
}

// Remove deletes the line with the given id.
func (s *CartStore) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persistLocked(ctx)
		}
	}

	return nil
}

// ToggleSelect flips the selected flag of the line with the given id.
func (s *CartStore) ToggleSelect(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Selected = !s.items[i].Selected
			return s.persistLocked(ctx)
		}
	}

	return nil
}

// ToggleSelectAll deselects every line when all lines are selected, and
// selects every line otherwise. Only a full-select state triggers the
// deselect; any partial or empty selection selects all.
func (s *CartStore) ToggleSelectAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	allSelected := domain.SnapshotOf(s.items).AllSelected
	for i := range s.items {
		s.items[i].Selected = !allSelected
	}

	return s.persistLocked(ctx)
}

// Clear empties the cart.
func (s *CartStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil

	return s.persistLocked(ctx)
}

// RemoveSelected keeps only the unselected lines.
func (s *CartStore) RemoveSelected(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if !item.Selected {
			kept = append(kept, item)
		}
	}
	s.items = kept

	return s.persistLocked(ctx)
}

// Items returns a copy of the current cart lines.
func (s *CartStore) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)

	return items
}

// Snapshot recomputes the derived aggregates from the current lines.
func (s *CartStore) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.SnapshotOf(s.items)
}

func (s *CartStore) persistLocked(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []domain.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart items: %w", err)
	}

	if err := s.storage.Put(ctx, StorageKeyCartItems, data); err != nil {
		return fmt.Errorf("persist cart items: %w", err)
	}

	return nil
}

func (s *CartStore) nextIDLocked() int64 {
	var max int64
	for _, item := range s.items {
		if item.ID > max {
			max = item.ID
		}
	}

	return max + 1
}
