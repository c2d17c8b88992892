package service

import (
	"errors"
	"fmt"

	"hardtrack/internal/model"
	"hardtrack/internal/store"
	"hardtrack/internal/ws"
	"hardtrack/pkg/validator"

	"github.com/shopspring/decimal"
)

var ErrNegativePrice = errors.New("price must not be negative")

type InventoryService interface {
	GetItems(query string) []model.InventoryItem
	GetAvailableItems(query string) []model.InventoryItem
	GetItem(id string) (*model.InventoryItem, error)
	CreateItem(req *ItemRequest) (*model.InventoryItem, error)
	UpdateItem(id string, req *ItemRequest) (*model.InventoryItem, error)
	DeleteItem(id string, confirm Confirmer) error

	GetSuppliers() []model.Supplier
	CreateSupplier(req *SupplierRequest) (*model.Supplier, error)
	UpdateSupplier(id string, req *SupplierRequest) (*model.Supplier, error)
	DeleteSupplier(id string, confirm Confirmer) error
}

type ItemRequest struct {
	ID       string          `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
}

type SupplierRequest struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact"`
	Email   string `json:"email" validate:"omitempty,email"`
	Status  string `json:"status" validate:"required,oneof='Active' 'Inactive'"`
}

type inventoryService struct {
	inventory store.InventoryStore
	hub       *ws.Hub
}

func NewInventoryService(inventory store.InventoryStore, hub *ws.Hub) InventoryService {
	return &inventoryService{inventory: inventory, hub: hub}
}

func (s *inventoryService) GetItems(query string) []model.InventoryItem {
	return s.inventory.SearchItems(query)
}

func (s *inventoryService) GetAvailableItems(query string) []model.InventoryItem {
	return s.inventory.AvailableItems(query)
}

func (s *inventoryService) GetItem(id string) (*model.InventoryItem, error) {
	return s.inventory.FindItem(id)
}

func (s *inventoryService) CreateItem(req *ItemRequest) (*model.InventoryItem, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	item := model.InventoryItem{
		ID:       req.ID,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Price:    req.Price,
	}
	if err := s.inventory.AddItem(item); err != nil {
		return nil, err
	}
	item.UpdateStatus()

	go s.hub.Publish(ws.EventStockUpdate, map[string]any{
		"action": "item_created",
		"item":   item,
	})
	return &item, nil
}

func (s *inventoryService) UpdateItem(id string, req *ItemRequest) (*model.InventoryItem, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	existing, err := s.inventory.FindItem(id)
	if err != nil {
		return nil, err
	}
	oldQuantity := existing.Quantity

	item := model.InventoryItem{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Price:    req.Price,
	}
	if err := s.inventory.UpdateItem(item); err != nil {
		return nil, err
	}
	item.UpdateStatus()

	go s.hub.Publish(ws.EventStockUpdate, map[string]any{
		"action":       "item_updated",
		"item":         item,
		"old_quantity": oldQuantity,
	})
	return &item, nil
}

func (s *inventoryService) DeleteItem(id string, confirm Confirmer) error {
	item, err := s.inventory.FindItem(id)
	if err != nil {
		return err
	}
	if !confirm.Confirm(fmt.Sprintf("Are you sure you want to delete %s?", item.Name)) {
		return ErrNotConfirmed
	}
	if err := s.inventory.DeleteItem(id); err != nil {
		return err
	}

	go s.hub.Publish(ws.EventStockUpdate, map[string]any{
		"action": "item_deleted",
		"item":   item,
	})
	return nil
}

func (s *inventoryService) GetSuppliers() []model.Supplier {
	return s.inventory.Suppliers()
}

func supplierFromRequest(id string, req *SupplierRequest) model.Supplier {
	return model.Supplier{
		ID:      id,
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Status:  model.SupplierStatus(req.Status),
	}
}

func (s *inventoryService) CreateSupplier(req *SupplierRequest) (*model.Supplier, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	supplier := supplierFromRequest(req.ID, req)
	if err := s.inventory.AddSupplier(supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *inventoryService) UpdateSupplier(id string, req *SupplierRequest) (*model.Supplier, error) {
	if err := validator.FirstError(req); err != nil {
		return nil, err
	}
	supplier := supplierFromRequest(id, req)
	if err := s.inventory.UpdateSupplier(supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *inventoryService) DeleteSupplier(id string, confirm Confirmer) error {
	supplier, err := s.inventory.FindSupplier(id)
	if err != nil {
		return err
	}
	if !confirm.Confirm(fmt.Sprintf("Delete supplier %s?", supplier.Name)) {
		return ErrNotConfirmed
	}
	return s.inventory.DeleteSupplier(id)
}
