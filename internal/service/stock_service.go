package service

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockService implements the two atomic stock movements. Each one reads the
// product under a row lock, adjusts the quantity and appends the ledger
// record inside a single transaction, so either both effects happen or
// neither does.
type StockService interface {
	Purchase(productID uuid.UUID, amount int, note string) (*model.Purchase, error)
	Sale(productID uuid.UUID, amount int, note string) (*model.Sale, error)
	ListPurchases() ([]model.Purchase, error)
	ListSales() ([]model.Sale, error)
}

type stockService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	db           *gorm.DB
}

func NewStockService(pRepo repository.ProductRepository, mRepo repository.MovementRepository, db *gorm.DB) StockService {
	return &stockService{
		productRepo:  pRepo,
		movementRepo: mRepo,
		db:           db,
	}
}

func (s *stockService) Purchase(productID uuid.UUID, amount int, note string) (*model.Purchase, error) {
	if amount < 1 {
		return nil, model.NewValidationError("amount", "must be a positive integer")
	}

	var purchase *model.Purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindForUpdate(tx, productID)
		if err != nil {
			return err
		}

		if err := s.productRepo.UpdateQuantity(tx, product.ID, product.Quantity+amount); err != nil {
			return err
		}

		purchase = &model.Purchase{
			ProductID: product.ID,
			Quantity:  amount,
			Price:     product.Price,
			Note:      note,
		}
		return s.movementRepo.CreatePurchase(tx, purchase)
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

func (s *stockService) Sale(productID uuid.UUID, amount int, note string) (*model.Sale, error) {
	if amount < 1 {
		return nil, model.NewValidationError("amount", "must be a positive integer")
	}

	var sale *model.Sale
	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindForUpdate(tx, productID)
		if err != nil {
			return err
		}

		if amount > product.Quantity {
			return model.ErrInsufficientStock
		}

		if err := s.productRepo.UpdateQuantity(tx, product.ID, product.Quantity-amount); err != nil {
			return err
		}

		sale = &model.Sale{
			ProductID: product.ID,
			Quantity:  amount,
			Price:     product.Price,
			Note:      note,
		}
		return s.movementRepo.CreateSale(tx, sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *stockService) ListPurchases() ([]model.Purchase, error) {
	return s.movementRepo.ListPurchases()
}

func (s *stockService) ListSales() ([]model.Sale, error) {
	return s.movementRepo.ListSales()
}
