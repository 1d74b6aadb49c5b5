package model

// Category lives in a legacy table with uppercase column names, so every
// column is mapped explicitly.
type Category struct {
	ID          uint64  `gorm:"column:ID;primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:NAME;type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Description *string `gorm:"column:DESCRIPTION;type:text" json:"description,omitempty"`
}

func (Category) TableName() string {
	return "INVENTORY_CATEGORY"
}
