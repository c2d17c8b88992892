package service

import (
	"sync"

	"hardtrack/internal/model"
	"hardtrack/internal/store"
)

// CartService keeps one staging cart per session. Carts live only in
// memory; they vanish with the session and are never persisted.
type CartService interface {
	View(sessionID string) (*model.Cart, model.CartTotals)
	AddItem(sessionID, itemID string) (*model.Cart, error)
	Increase(sessionID, itemID string) error
	Decrease(sessionID, itemID string) error
	Remove(sessionID, itemID string)
	Clear(sessionID string, confirm Confirmer) error

	// Snapshot returns a copy of the lines plus totals computed over
	// them; checkout persists exactly these numbers.
	Snapshot(sessionID string) ([]model.CartLine, model.CartTotals)

	// Reset empties the cart without confirmation. Used after a
	// successful checkout and on session end.
	Reset(sessionID string)
}

type cartService struct {
	inventory store.InventoryStore
	mu        sync.Mutex
	carts     map[string]*model.Cart
}

func NewCartService(inventory store.InventoryStore) CartService {
	return &cartService{
		inventory: inventory,
		carts:     make(map[string]*model.Cart),
	}
}

func (s *cartService) cart(sessionID string) *model.Cart {
	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &model.Cart{}
		s.carts[sessionID] = cart
	}
	return cart
}

func (s *cartService) View(sessionID string) (*model.Cart, model.CartTotals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(sessionID)
	view := &model.Cart{Lines: append([]model.CartLine{}, cart.Lines...)}
	return view, cart.Totals()
}

func (s *cartService) AddItem(sessionID, itemID string) (*model.Cart, error) {
	item, err := s.inventory.FindItem(itemID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(sessionID)
	if err := cart.Add(item); err != nil {
		return nil, err
	}
	view := &model.Cart{Lines: append([]model.CartLine{}, cart.Lines...)}
	return view, nil
}

func (s *cartService) Increase(sessionID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Increase(itemID)
}

func (s *cartService) Decrease(sessionID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Decrease(itemID)
}

func (s *cartService) Remove(sessionID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Remove(itemID)
}

func (s *cartService) Clear(sessionID string, confirm Confirmer) error {
	if !confirm.Confirm("Remove all items from cart?") {
		return ErrNotConfirmed
	}
	s.Reset(sessionID)
	return nil
}

func (s *cartService) Snapshot(sessionID string) ([]model.CartLine, model.CartTotals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(sessionID)
	lines := append([]model.CartLine{}, cart.Lines...)
	return lines, cart.Totals()
}

func (s *cartService) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
