package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is an immutable stock-in record. It is only ever appended as a
// side effect of the purchase operation; nothing updates or deletes it
// except the cascade when its product is deleted.
type Purchase struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // Snapshot of the product price at execution time
	Note      string          `json:"note"`
}

// Sale is the stock-out counterpart of Purchase, appended only when
// sufficient stock exists.
type Sale struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Note      string          `json:"note"`
}
