package cart

import (
	"sync"

	"golden-fork/storefront/internal/domain"
)

// ItemSource resolves item IDs against the current catalog.
type ItemSource interface {
	Item(id string) (domain.MenuItem, bool)
}

// Store is the in-memory ordered cart. Every mutation fires the onChange
// hook after it completes, which is how the cart view and the header badge
// stay in sync.
type Store struct {
	mu       sync.Mutex
	source   ItemSource
	lines    []domain.CartLine
	onChange func()
}

func New(source ItemSource, onChange func()) *Store {
	return &Store{source: source, onChange: onChange}
}

// Add appends a new line with quantity 1, or increments an existing one.
// Unknown item IDs are ignored. The item is copied at add time, so later
// catalog price changes do not affect the line.
func (s *Store) Add(itemID string) {
	item, ok := s.source.Item(itemID)
	if !ok {
		return
	}

	s.mu.Lock()
	found := false
	for i := range s.lines {
		if s.lines[i].Item.ID == itemID {
			s.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.lines = append(s.lines, domain.CartLine{Item: item, Quantity: 1})
	}
	s.mu.Unlock()

	s.notify()
}

// AdjustQuantity changes a line's quantity by delta. A resulting quantity
// of zero or less removes the line entirely. Absent IDs are ignored.
func (s *Store) AdjustQuantity(itemID string, delta int) {
	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].Item.ID != itemID {
			continue
		}
		s.lines[i].Quantity += delta
		if s.lines[i].Quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}
		changed = true
		break
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()

	s.notify()
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// Subtotal recomputes the cart total from current lines on every call.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var subtotal float64
	for _, line := range s.lines {
		subtotal += line.Item.Price * float64(line.Quantity)
	}
	return subtotal
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
