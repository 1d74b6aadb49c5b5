package handler

import (
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

// movementRequest is shared by the purchase and sale forms. Note is stored
// with the record but carries no logic.
type movementRequest struct {
	Amount int    `json:"amount" form:"amount"`
	Note   string `json:"note" form:"note"`
}

func (h *StockHandler) Purchase(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req movementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	purchase, err := h.service.Purchase(productID, req.Amount, req.Note)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Stock increased", "data": purchase})
}

func (h *StockHandler) Sale(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req movementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	sale, err := h.service.Sale(productID, req.Amount, req.Note)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Stock reduced", "data": sale})
}

func (h *StockHandler) GetPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.ListPurchases()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(purchases)
}

func (h *StockHandler) GetSales(c *fiber.Ctx) error {
	sales, err := h.service.ListSales()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sales)
}
