package service

import (
	"errors"
	"testing"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.Purchase{},
		&model.Sale{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newStockService(db *gorm.DB) StockService {
	return NewStockService(repository.NewProductRepo(db), repository.NewMovementRepo(db), db)
}

func mustCreateProduct(t *testing.T, db *gorm.DB, name, sku string, quantity int, price string) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:     name,
		SKU:      sku,
		Quantity: quantity,
		Price:    decimal.RequireFromString(price),
	}
	if err := repository.NewProductRepo(db).Create(product); err != nil {
		t.Fatalf("failed to create product %q: %v", name, err)
	}
	return product
}

func reloadProduct(t *testing.T, db *gorm.DB, id uuid.UUID) *model.Product {
	t.Helper()

	var product model.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		t.Fatalf("failed to reload product: %v", err)
	}
	return &product
}

// Walks the reference scenario end to end: purchase tops the quantity up,
// an oversized sale is rejected without side effects, and a full sale
// drains it to zero.
func TestStockService_PurchaseSaleScenario(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockService(db)

	product := mustCreateProduct(t, db, "Widget", "wd-1", 10, "2.50")

	purchase, err := svc.Purchase(product.ID, 5, "restock")
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if got := reloadProduct(t, db, product.ID).Quantity; got != 15 {
		t.Errorf("expected quantity 15 after purchase, got %d", got)
	}
	if purchase.Quantity != 5 {
		t.Errorf("expected purchase quantity 5, got %d", purchase.Quantity)
	}
	if !purchase.Price.Equal(decimal.RequireFromString("2.50")) {
		t.Errorf("expected purchase price 2.50, got %s", purchase.Price)
	}
	if purchase.Note != "restock" {
		t.Errorf("expected note stored, got %q", purchase.Note)
	}

	if _, err := svc.Sale(product.ID, 20, ""); !errors.Is(err, model.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if got := reloadProduct(t, db, product.ID).Quantity; got != 15 {
		t.Errorf("expected quantity unchanged at 15 after rejected sale, got %d", got)
	}
	var saleCount int64
	db.Model(&model.Sale{}).Count(&saleCount)
	if saleCount != 0 {
		t.Errorf("expected no sale record after rejection, got %d", saleCount)
	}

	sale, err := svc.Sale(product.ID, 15, "")
	if err != nil {
		t.Fatalf("Sale() error = %v", err)
	}
	if got := reloadProduct(t, db, product.ID).Quantity; got != 0 {
		t.Errorf("expected quantity 0 after full sale, got %d", got)
	}
	if sale.Quantity != 15 || !sale.Price.Equal(decimal.RequireFromString("2.50")) {
		t.Errorf("unexpected sale record: quantity %d, price %s", sale.Quantity, sale.Price)
	}

	var purchaseCount int64
	db.Model(&model.Purchase{}).Count(&purchaseCount)
	db.Model(&model.Sale{}).Count(&saleCount)
	if purchaseCount != 1 || saleCount != 1 {
		t.Errorf("expected exactly 1 purchase and 1 sale, got %d and %d", purchaseCount, saleCount)
	}
}

// Purchase followed by a sale of the same amount restores the prior
// quantity.
func TestStockService_PurchaseThenSaleIsInverse(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockService(db)

	product := mustCreateProduct(t, db, "Cable", "CBL-2", 7, "4.90")

	if _, err := svc.Purchase(product.ID, 9, ""); err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if _, err := svc.Sale(product.ID, 9, ""); err != nil {
		t.Fatalf("Sale() error = %v", err)
	}

	if got := reloadProduct(t, db, product.ID).Quantity; got != 7 {
		t.Errorf("expected quantity restored to 7, got %d", got)
	}
}

func TestStockService_RejectsNonPositiveAmount(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockService(db)

	product := mustCreateProduct(t, db, "Widget", "WD-1", 10, "2.50")

	for _, amount := range []int{0, -3} {
		if _, err := svc.Purchase(product.ID, amount, ""); !isAmountValidationError(err) {
			t.Errorf("Purchase(%d): expected amount validation error, got %v", amount, err)
		}
		if _, err := svc.Sale(product.ID, amount, ""); !isAmountValidationError(err) {
			t.Errorf("Sale(%d): expected amount validation error, got %v", amount, err)
		}
	}

	if got := reloadProduct(t, db, product.ID).Quantity; got != 10 {
		t.Errorf("expected quantity unchanged at 10, got %d", got)
	}
	var purchaseCount, saleCount int64
	db.Model(&model.Purchase{}).Count(&purchaseCount)
	db.Model(&model.Sale{}).Count(&saleCount)
	if purchaseCount != 0 || saleCount != 0 {
		t.Errorf("expected no movement records, got %d purchases and %d sales", purchaseCount, saleCount)
	}
}

func isAmountValidationError(err error) bool {
	var validationErr *model.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}
	_, ok := validationErr.Fields["amount"]
	return ok
}

func TestStockService_UnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockService(db)

	if _, err := svc.Purchase(uuid.New(), 1, ""); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Purchase: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Sale(uuid.New(), 1, ""); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Sale: expected ErrNotFound, got %v", err)
	}
}

// The recorded price is the product price at execution time, so a later
// price change does not rewrite history.
func TestStockService_PriceSnapshot(t *testing.T) {
	db := setupTestDB(t)
	svc := newStockService(db)

	product := mustCreateProduct(t, db, "Widget", "WD-1", 10, "2.50")

	first, err := svc.Purchase(product.ID, 1, "")
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}

	if err := db.Model(&model.Product{}).Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("3.75")).Error; err != nil {
		t.Fatalf("failed to change price: %v", err)
	}

	second, err := svc.Purchase(product.ID, 1, "")
	if err != nil {
		t.Fatalf("Purchase() after price change error = %v", err)
	}

	if !first.Price.Equal(decimal.RequireFromString("2.50")) {
		t.Errorf("expected first snapshot 2.50, got %s", first.Price)
	}
	if !second.Price.Equal(decimal.RequireFromString("3.75")) {
		t.Errorf("expected second snapshot 3.75, got %s", second.Price)
	}
}
