package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler talks to the repository directly: category CRUD has no
// business rules beyond validation and the set-null delete policy, which
// lives in the repository.
type CategoryHandler struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryHandler(categoryRepo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch categories"})
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	category, err := h.categoryRepo.FindByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if fields := validator.ValidateStruct(&category); fields != nil {
		return respondError(c, &model.ValidationError{Fields: fields})
	}

	if err := h.categoryRepo.Create(&category); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	existing, err := h.categoryRepo.FindByID(id)
	if err != nil {
		return respondError(c, err)
	}

	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}

	if fields := validator.ValidateStruct(&category); fields != nil {
		return respondError(c, &model.ValidationError{Fields: fields})
	}

	existing.Name = category.Name
	existing.Description = category.Description
	if err := h.categoryRepo.Update(existing); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": existing})
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.categoryRepo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}
