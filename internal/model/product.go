package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the fixed policy constant for the dashboard's
// low-stock list: products at or below it are flagged.
const LowStockThreshold = 5

type Product struct {
	BaseModel
	Name       string          `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	SKU        string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required,max=50"`
	CategoryID *uint64         `gorm:"index" json:"category_id,omitempty"`
	SupplierID *uint64         `gorm:"index" json:"supplier_id,omitempty"`
	Quantity   int             `gorm:"not null;default:0" json:"quantity"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	// Relasi
	Category *Category `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty" validate:"-"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID;references:ID" json:"supplier,omitempty" validate:"-"`
}

// Normalize enforces the write invariants at the persistence boundary: the
// SKU is trimmed and uppercased, a negative or unset quantity is clamped to
// zero. Every write path calls it, regardless of caller.
func (p *Product) Normalize() {
	p.SKU = NormalizeSKU(p.SKU)
	if p.Quantity < 0 {
		p.Quantity = 0
	}
}

// NormalizeSKU is exposed separately so lookups can compare against the
// stored form without a write.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}
