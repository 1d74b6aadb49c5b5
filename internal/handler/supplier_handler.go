package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type SupplierHandler struct {
	supplierRepo repository.SupplierRepository
}

func NewSupplierHandler(supplierRepo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{supplierRepo: supplierRepo}
}

func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.supplierRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch suppliers"})
	}
	return c.JSON(suppliers)
}

func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	supplier, err := h.supplierRepo.FindByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) CreateSupplier(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if fields := validator.ValidateStruct(&supplier); fields != nil {
		return respondError(c, &model.ValidationError{Fields: fields})
	}

	if err := h.supplierRepo.Create(&supplier); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Supplier created", "data": supplier})
}

func (h *SupplierHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	existing, err := h.supplierRepo.FindByID(id)
	if err != nil {
		return respondError(c, err)
	}

	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if fields := validator.ValidateStruct(&supplier); fields != nil {
		return respondError(c, &model.ValidationError{Fields: fields})
	}

	existing.Name = supplier.Name
	existing.ContactPerson = supplier.ContactPerson
	existing.Phone = supplier.Phone
	existing.Email = supplier.Email
	existing.Address = supplier.Address
	if err := h.supplierRepo.Update(existing); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier updated", "data": existing})
}

func (h *SupplierHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	if err := h.supplierRepo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Supplier deleted"})
}
