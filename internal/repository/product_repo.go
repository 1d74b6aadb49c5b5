package repository

import (
	"errors"
	"strings"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	Search(query string) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error
	Delete(id uuid.UUID) error
	LowStock() ([]model.Product, error)
	Count() (int64, error)
	TotalUnits() (int64, error)
	InventoryValue() (decimal.Decimal, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	product.Normalize()
	return r.db.Create(product).Error
}

// Search matches a case-insensitive substring against name or SKU. An empty
// query returns the full catalog; either way results come back ordered by
// name ascending.
func (r *productRepo) Search(query string) ([]model.Product, error) {
	tx := r.db.Preload("Category").Preload("Supplier").Order("name ASC")
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ?", like, like)
	}
	var products []model.Product
	err := tx.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Supplier").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", model.NormalizeSKU(sku)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	return &product, err
}

// FindForUpdate runs inside the caller's transaction and takes a row lock so
// the check-and-adjust of a stock movement cannot interleave with a
// concurrent one. SQLite has no SELECT ... FOR UPDATE; its single-writer
// model already serializes these.
func (r *productRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var product model.Product
	err := q.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	product.Normalize()
	return r.db.Save(product).Error
}

// UpdateQuantity runs inside the caller's transaction.
func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error {
	if quantity < 0 {
		quantity = 0
	}
	result := tx.Model(&model.Product{}).Where("id = ?", id).Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete removes the product together with its purchase and sale history in
// one transaction.
func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.Purchase{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.Sale{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Product{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return model.ErrNotFound
		}
		return nil
	})
}

func (r *productRepo) LowStock() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("quantity <= ?", model.LowStockThreshold).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}

func (r *productRepo) TotalUnits() (int64, error) {
	var row struct{ Total int64 }
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(quantity), 0) AS total").
		Scan(&row).Error
	return row.Total, err
}

// InventoryValue is SUM(quantity * price) across the catalog, zero when
// there are no products.
func (r *productRepo) InventoryValue() (decimal.Decimal, error) {
	var row struct{ Value decimal.Decimal }
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(quantity * price), 0) AS value").
		Scan(&row).Error
	return row.Value, err
}
