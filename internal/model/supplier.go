package model

// Supplier is the second legacy catalog table, mapped column by column like
// Category.
type Supplier struct {
	ID            uint64  `gorm:"column:ID;primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"column:NAME;type:varchar(150);not null" json:"name" validate:"required,max=150"`
	ContactPerson *string `gorm:"column:CONTACT_PERSON;type:varchar(100)" json:"contact_person,omitempty" validate:"omitempty,max=100"`
	Phone         *string `gorm:"column:PHONE;type:varchar(20)" json:"phone,omitempty" validate:"omitempty,max=20"`
	Email         *string `gorm:"column:EMAIL;type:varchar(254)" json:"email,omitempty" validate:"omitempty,email"`
	Address       *string `gorm:"column:ADDRESS;type:text" json:"address,omitempty"`
}

func (Supplier) TableName() string {
	return "INVENTORY_SUPPLIER"
}
