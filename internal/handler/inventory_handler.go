package handler

import (
	"hardtrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetItems lists inventory, optionally filtered by ?q= on id or name.
func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	return c.JSON(h.service.GetItems(c.Query("q")))
}

// GetAvailableItems is the cashier product list: in-stock items only.
func (h *InventoryHandler) GetAvailableItems(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAvailableItems(c.Query("q")))
}

func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.service.GetItem(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var req service.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.CreateItem(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product added successfully", "data": item})
}

func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var req service.ItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	// The path, not the body, names the item.
	req.ID = c.Params("id")

	item, err := h.service.UpdateItem(c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated successfully", "data": item})
}

func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.service.DeleteItem(c.Params("id"), confirmFromRequest(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

func (h *InventoryHandler) GetSuppliers(c *fiber.Ctx) error {
	return c.JSON(h.service.GetSuppliers())
}

func (h *InventoryHandler) CreateSupplier(c *fiber.Ctx) error {
	var req service.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	supplier, err := h.service.CreateSupplier(&req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Supplier added successfully", "data": supplier})
}

func (h *InventoryHandler) UpdateSupplier(c *fiber.Ctx) error {
	var req service.SupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	req.ID = c.Params("id")

	supplier, err := h.service.UpdateSupplier(c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier updated successfully", "data": supplier})
}

func (h *InventoryHandler) DeleteSupplier(c *fiber.Ctx) error {
	if err := h.service.DeleteSupplier(c.Params("id"), confirmFromRequest(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted successfully"})
}
