package cart

import (
	"context"
	"slices"
	"sync"

	"dalarosa-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store is one shopper's cart. Lines keep insertion order and there is at
// most one line per product id.
type Store struct {
	mu    sync.Mutex
	items []LineItem
}

func NewStore() *Store {
	return &Store{items: make([]LineItem, 0)}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(li LineItem) bool { return li.ID == id })
}

// Add merges by product id: an existing line gains one unit and keeps its
// stored price, a new line starts at quantity 1 whatever item.Quantity says.
func (s *Store) Add(ctx context.Context, item LineItem) error {
	if item.ID == "" {
		logger.FromCtx(ctx).Warn("dropping cart item without product id",
			zap.String("name", item.Name),
		)
		return ErrMissingProductID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(item.ID); i >= 0 {
		s.items[i].Quantity++
		return nil
	}

	item.Quantity = 1
	s.items = append(s.items, item)
	return nil
}

// Remove is a no-op for unknown ids.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
}

// UpdateQuantity sets the quantity of a line; n <= 0 removes it.
func (s *Store) UpdateQuantity(id string, n int) {
	if n <= 0 {
		s.Remove(id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.items[i].Quantity = n
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]LineItem, 0)
}

// Subtract takes the given lines' quantities back out of the cart, dropping
// lines that reach zero. Lines and units added after the snapshot stay.
func (s *Store) Subtract(lines []LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, li := range lines {
		i := s.indexOf(li.ID)
		if i < 0 {
			continue
		}
		s.items[i].Quantity -= li.Quantity
		if s.items[i].Quantity <= 0 {
			s.items = slices.Delete(s.items, i, i+1)
		}
	}
}

func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, li := range s.items {
		total = total.Add(li.LineTotal())
	}
	return total
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *Store) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id) >= 0
}

// Count is the sum of all quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, li := range s.items {
		n += li.Quantity
	}
	return n
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

func (s *Store) Summary() Summary {
	items := s.Items()
	total := decimal.Zero
	count := 0
	for _, li := range items {
		total = total.Add(li.LineTotal())
		count += li.Quantity
	}
	return Summary{Items: items, Count: count, Total: total}
}
