// Package workingset holds the in-memory order list shared by every reader
// and written by the status gateway, the refresh job and the event consumer.
package workingset

import (
	"sync"

	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/order"
)

// OrderSet is a concurrency-safe, insertion-ordered set of orders keyed by id.
//
// Readers get the stored pointers. Orders are never mutated in place: writers
// replace an entry with a modified clone, so a pointer handed to a reader stays
// consistent for as long as it is held.
type OrderSet struct {
	mu    sync.RWMutex
	byID  map[string]*order.Order
	order []string
}

func New() *OrderSet {
	return &OrderSet{byID: make(map[string]*order.Order)}
}

// Load replaces the whole set. Later duplicates of an id overwrite earlier ones
// but keep the position of the first.
//
// A loaded order never replaces a local copy with a higher version: the
// snapshot may have been read before a change that has since been committed
// and applied here.
func (s *OrderSet) Load(orders []*order.Order) {
	byID := make(map[string]*order.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		key := o.ID().String()
		if _, seen := byID[key]; !seen {
			ids = append(ids, key)
		}
		byID[key] = o
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, loaded := range byID {
		if local, ok := s.byID[key]; ok && local.Version() > loaded.Version() {
			byID[key] = local
		}
	}
	s.byID = byID
	s.order = ids
}

func (s *OrderSet) Get(id kernel.ID) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.byID[id.String()]
	return o, ok
}

func (s *OrderSet) List() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*order.Order, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *OrderSet) Replace(o *order.Order) bool {
	key := o.ID().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[key]; !ok {
		return false
	}
	s.byID[key] = o
	return true
}

// ApplyStatus applies a status change observed elsewhere, typically from the
// event bus. It only applies when version is exactly one ahead of the local
// copy; anything else is left to the next full reload.
func (s *OrderSet) ApplyStatus(id kernel.ID, status order.Status, version int64) (bool, error) {
	key := id.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[key]
	if !ok || current.Version()+1 != version {
		return false, nil
	}

	updated := current.Clone()
	if err := updated.ChangeStatus(status); err != nil {
		return false, err
	}
	s.byID[key] = updated
	return true, nil
}

// Len returns the number of orders in the set.
func (s *OrderSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
