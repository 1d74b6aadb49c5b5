package service

import (
	"errors"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/validator"

	"github.com/google/uuid"
)

type ProductService interface {
	Create(req *model.Product) error
	Update(id uuid.UUID, req *model.Product) (*model.Product, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (*model.Product, error)
	Search(query string) ([]model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(pRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: pRepo}
}

func (s *productService) Create(req *model.Product) error {
	if fields := validator.ValidateStruct(req); fields != nil {
		return &model.ValidationError{Fields: fields}
	}

	// Duplicate check against the normalized form, since that is what gets
	// stored
	if err := s.checkDuplicateSKU(req.SKU, uuid.Nil); err != nil {
		return err
	}

	return s.productRepo.Create(req)
}

func (s *productService) Update(id uuid.UUID, req *model.Product) (*model.Product, error) {
	if fields := validator.ValidateStruct(req); fields != nil {
		return nil, &model.ValidationError{Fields: fields}
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkDuplicateSKU(req.SKU, existing.ID); err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.SKU = req.SKU
	existing.CategoryID = req.CategoryID
	existing.SupplierID = req.SupplierID
	existing.Quantity = req.Quantity
	existing.Price = req.Price
	existing.Category = nil
	existing.Supplier = nil

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	return s.productRepo.Delete(id)
}

func (s *productService) Get(id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *productService) Search(query string) ([]model.Product, error) {
	return s.productRepo.Search(query)
}

// checkDuplicateSKU enforces global SKU uniqueness before the unique index
// gets a say, so the caller sees a field-level message instead of a driver
// error. selfID skips the product being updated.
func (s *productService) checkDuplicateSKU(sku string, selfID uuid.UUID) error {
	existing, err := s.productRepo.FindBySKU(sku)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return model.NewValidationError("sku", "already exists")
	}
	return nil
}
