package handler

import (
	"hardtrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	carts    service.CartService
	checkout service.CheckoutService
}

func NewCartHandler(carts service.CartService, checkout service.CheckoutService) *CartHandler {
	return &CartHandler{carts: carts, checkout: checkout}
}

// GetCart returns the session's lines with live totals.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	cart, totals := h.carts.View(sessionID(c))
	return c.JSON(fiber.Map{"lines": cart.Lines, "totals": totals})
}

type AddToCartRequest struct {
	ItemID string `json:"item_id"`
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.ItemID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "item_id is required"})
	}

	cart, err := h.carts.AddItem(sessionID(c), req.ItemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"lines": cart.Lines, "totals": cart.Totals()})
}

func (h *CartHandler) IncreaseItem(c *fiber.Ctx) error {
	if err := h.carts.Increase(sessionID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return h.GetCart(c)
}

func (h *CartHandler) DecreaseItem(c *fiber.Ctx) error {
	if err := h.carts.Decrease(sessionID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return h.GetCart(c)
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	h.carts.Remove(sessionID(c), c.Params("id"))
	return h.GetCart(c)
}

func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.carts.Clear(sessionID(c), confirmFromRequest(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// Checkout commits the cart as a transaction and reports id and total
// back for the receipt.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	tx, err := h.checkout.Checkout(sessionID(c), req.PaymentMethod)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{
		"message":        "Payment successful",
		"transaction_id": tx.ID,
		"total":          tx.Total,
		"payment_method": tx.PaymentMethod,
	})
}
