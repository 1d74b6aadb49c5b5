package repository

import (
	"errors"

	"go-stockroom/internal/model"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll() ([]model.Supplier, error)
	FindByID(id uint64) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uint64) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.Order(`"NAME" ASC`).Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uint64) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, model.ErrNotFound
	}
	return &supplier, err
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

// Delete mirrors the category policy: references are cleared inside the
// delete transaction, never cascaded.
func (r *supplierRepo) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).
			Where("supplier_id = ?", id).
			Update("supplier_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Supplier{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return model.ErrNotFound
		}
		return nil
	})
}
