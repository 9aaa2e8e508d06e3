package cart

import (
	"sync"

	"salesdesk/internal/domain"
)

// View is what the sales page renders after every operation: a copy of the
// lines plus the current total.
type View struct {
	Items []LineItem
	Total float64
}

// Store holds one Order per register session (the sid cookie). Orders live
// only in memory and die with the session or on Reset; nothing is ever
// written to durable storage.
//
// The store's mutex is what keeps the single-writer, run-to-completion
// discipline intact under concurrent HTTP delivery: every operation on an
// order happens under the lock, start to finish.
type Store struct {
	mu     sync.Mutex
	orders map[string]*Order
}

func NewStore() *Store {
	return &Store{orders: make(map[string]*Order)}
}

func (s *Store) order(sid string) *Order {
	o, ok := s.orders[sid]
	if !ok {
		o = NewOrder()
		s.orders[sid] = o
	}
	return o
}

func (s *Store) Add(sid string, p domain.Product) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.order(sid)
	o.AddItem(p)
	return View{Items: o.Items(), Total: o.Total()}
}

func (s *Store) UpdateQuantity(sid string, productID, delta int) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.order(sid)
	o.UpdateQuantity(productID, delta)
	return View{Items: o.Items(), Total: o.Total()}
}

func (s *Store) Remove(sid string, productID int) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.order(sid)
	o.RemoveItem(productID)
	return View{Items: o.Items(), Total: o.Total()}
}

// Snapshot returns the current lines and total without mutating anything.
func (s *Store) Snapshot(sid string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.order(sid)
	return View{Items: o.Items(), Total: o.Total()}
}

// Reset empties the session's order after checkout.
func (s *Store) Reset(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[sid]; ok {
		o.Clear()
	}
}

// Drop forgets the session entirely (register closed / session left).
func (s *Store) Drop(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, sid)
}
