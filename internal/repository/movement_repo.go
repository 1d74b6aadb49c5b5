package repository

import (
	"go-stockroom/internal/model"

	"gorm.io/gorm"
)

// MovementRepository appends and lists the immutable purchase/sale ledger.
// The create methods take a *gorm.DB so they run inside the stock service's
// transaction; there are deliberately no update or delete methods.
type MovementRepository interface {
	CreatePurchase(tx *gorm.DB, purchase *model.Purchase) error
	CreateSale(tx *gorm.DB, sale *model.Sale) error
	ListPurchases() ([]model.Purchase, error)
	ListSales() ([]model.Sale, error)
}

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepo(db *gorm.DB) MovementRepository {
	return &movementRepo{db}
}

func (r *movementRepo) CreatePurchase(tx *gorm.DB, purchase *model.Purchase) error {
	return tx.Create(purchase).Error
}

func (r *movementRepo) CreateSale(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *movementRepo) ListPurchases() ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Product").Order("created_at DESC").Find(&purchases).Error
	return purchases, err
}

func (r *movementRepo) ListSales() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Product").Order("created_at DESC").Find(&sales).Error
	return sales, err
}
