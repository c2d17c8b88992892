package store

import (
	"fmt"
	"strings"
	"sync"

	"hardtrack/internal/model"
	"hardtrack/pkg/storage"
)

// inventoryDocument is the persisted shape of the inventory file.
type inventoryDocument struct {
	Inventory []model.InventoryItem `json:"inventory"`
	Suppliers []model.Supplier      `json:"suppliers"`
}

type InventoryStore interface {
	Items() []model.InventoryItem
	FindItem(id string) (*model.InventoryItem, error)
	AddItem(item model.InventoryItem) error
	UpdateItem(item model.InventoryItem) error
	DeleteItem(id string) error
	SearchItems(query string) []model.InventoryItem
	AvailableItems(query string) []model.InventoryItem

	Suppliers() []model.Supplier
	FindSupplier(id string) (*model.Supplier, error)
	AddSupplier(supplier model.Supplier) error
	UpdateSupplier(supplier model.Supplier) error
	DeleteSupplier(id string) error

	// StageSale validates every line against current stock and prepares
	// the decremented document for a multi-file commit.
	StageSale(lines []model.CartLine) (*Staged, error)

	Path() string
}

type inventoryStore struct {
	path string
	mu   sync.Mutex
	doc  inventoryDocument
}

// OpenInventoryStore loads the inventory document. A missing file yields
// an empty store; a present-but-corrupt file is a hard error, never
// silently replaced.
func OpenInventoryStore(path string) (InventoryStore, error) {
	s := &inventoryStore{path: path}
	if _, err := storage.Load(path, &s.doc); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *inventoryStore) Path() string { return s.path }

func (s *inventoryStore) save() error {
	return storage.Save(s.path, &s.doc)
}

func (s *inventoryStore) Items() []model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.InventoryItem, len(s.doc.Inventory))
	copy(out, s.doc.Inventory)
	return out
}

func (s *inventoryStore) findItemLocked(id string) int {
	for i := range s.doc.Inventory {
		if s.doc.Inventory[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *inventoryStore) FindItem(id string) (*model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findItemLocked(id)
	if i < 0 {
		return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	item := s.doc.Inventory[i]
	return &item, nil
}

func (s *inventoryStore) AddItem(item model.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findItemLocked(item.ID) >= 0 {
		return fmt.Errorf("item %s: %w", item.ID, ErrDuplicate)
	}
	item.UpdateStatus()
	s.doc.Inventory = append(s.doc.Inventory, item)
	if err := s.save(); err != nil {
		s.doc.Inventory = s.doc.Inventory[:len(s.doc.Inventory)-1]
		return err
	}
	return nil
}

func (s *inventoryStore) UpdateItem(item model.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findItemLocked(item.ID)
	if i < 0 {
		return fmt.Errorf("item %s: %w", item.ID, ErrNotFound)
	}
	item.UpdateStatus()
	previous := s.doc.Inventory[i]
	s.doc.Inventory[i] = item
	if err := s.save(); err != nil {
		s.doc.Inventory[i] = previous
		return err
	}
	return nil
}

func (s *inventoryStore) DeleteItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findItemLocked(id)
	if i < 0 {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	previous := s.doc.Inventory
	s.doc.Inventory = append(append([]model.InventoryItem{}, previous[:i]...), previous[i+1:]...)
	if err := s.save(); err != nil {
		s.doc.Inventory = previous
		return err
	}
	return nil
}

func matches(item *model.InventoryItem, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.ID), query) ||
		strings.Contains(strings.ToLower(item.Name), query)
}

// SearchItems is an on-demand read-only view over the canonical list;
// there is no second "master copy" to drift out of sync.
func (s *inventoryStore) SearchItems(query string) []model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	query = strings.ToLower(strings.TrimSpace(query))
	out := []model.InventoryItem{}
	for i := range s.doc.Inventory {
		if matches(&s.doc.Inventory[i], query) {
			out = append(out, s.doc.Inventory[i])
		}
	}
	return out
}

// AvailableItems is the cashier's product view: everything in stock that
// matches the query.
func (s *inventoryStore) AvailableItems(query string) []model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	query = strings.ToLower(strings.TrimSpace(query))
	out := []model.InventoryItem{}
	for i := range s.doc.Inventory {
		item := &s.doc.Inventory[i]
		if item.Status == model.StatusOutOfStock {
			continue
		}
		if matches(item, query) {
			out = append(out, *item)
		}
	}
	return out
}

func (s *inventoryStore) Suppliers() []model.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Supplier, len(s.doc.Suppliers))
	copy(out, s.doc.Suppliers)
	return out
}

func (s *inventoryStore) findSupplierLocked(id string) int {
	for i := range s.doc.Suppliers {
		if s.doc.Suppliers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *inventoryStore) FindSupplier(id string) (*model.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findSupplierLocked(id)
	if i < 0 {
		return nil, fmt.Errorf("supplier %s: %w", id, ErrNotFound)
	}
	supplier := s.doc.Suppliers[i]
	return &supplier, nil
}

func (s *inventoryStore) AddSupplier(supplier model.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findSupplierLocked(supplier.ID) >= 0 {
		return fmt.Errorf("supplier %s: %w", supplier.ID, ErrDuplicate)
	}
	s.doc.Suppliers = append(s.doc.Suppliers, supplier)
	if err := s.save(); err != nil {
		s.doc.Suppliers = s.doc.Suppliers[:len(s.doc.Suppliers)-1]
		return err
	}
	return nil
}

func (s *inventoryStore) UpdateSupplier(supplier model.Supplier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findSupplierLocked(supplier.ID)
	if i < 0 {
		return fmt.Errorf("supplier %s: %w", supplier.ID, ErrNotFound)
	}
	previous := s.doc.Suppliers[i]
	s.doc.Suppliers[i] = supplier
	if err := s.save(); err != nil {
		s.doc.Suppliers[i] = previous
		return err
	}
	return nil
}

func (s *inventoryStore) DeleteSupplier(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findSupplierLocked(id)
	if i < 0 {
		return fmt.Errorf("supplier %s: %w", id, ErrNotFound)
	}
	previous := s.doc.Suppliers
	s.doc.Suppliers = append(append([]model.Supplier{}, previous[:i]...), previous[i+1:]...)
	if err := s.save(); err != nil {
		s.doc.Suppliers = previous
		return err
	}
	return nil
}

func (s *inventoryStore) StageSale(lines []model.CartLine) (*Staged, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := inventoryDocument{
		Inventory: make([]model.InventoryItem, len(s.doc.Inventory)),
		Suppliers: s.doc.Suppliers,
	}
	copy(next.Inventory, s.doc.Inventory)

	byID := make(map[string]*model.InventoryItem, len(next.Inventory))
	for i := range next.Inventory {
		byID[next.Inventory[i].ID] = &next.Inventory[i]
	}

	// Re-validate against current stock: the cart's MaxQty snapshot may
	// be stale by now.
	for _, line := range lines {
		item, ok := byID[line.ItemID]
		if !ok {
			return nil, fmt.Errorf("item %s: %w", line.ItemID, ErrNotFound)
		}
		if item.Quantity < line.Qty {
			return nil, &model.StockLimitError{ItemID: line.ItemID, Available: item.Quantity}
		}
		item.Quantity -= line.Qty
		item.UpdateStatus()
	}

	data, err := storage.Encode(&next)
	if err != nil {
		return nil, err
	}
	return &Staged{
		path: s.path,
		data: data,
		apply: func() {
			s.mu.Lock()
			s.doc = next
			s.mu.Unlock()
		},
	}, nil
}
