package repository

import (
	"gorm.io/gorm"

	"github.com/mvegadev/comanda/models"
)

type TableRepository struct {
	db *gorm.DB
}

func (r *TableRepository) FindByID(id string) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableRepository) FindByNumber(number int) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, "number = ?", number).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableRepository) FindAll() ([]*models.Table, error) {
	var tables []*models.Table
	err := r.db.Order("number asc").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByStatus(status models.TableStatus) ([]*models.Table, error) {
	var tables []*models.Table
	err := r.db.Where("status = ?", status).Order("number asc").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Save(table *models.Table) (*models.Table, error) {
	if err := r.db.Create(table).Error; err != nil {
		return nil, err
	}
	return table, nil
}

// Update persists the full row. Select("*") keeps zero values and clears
// current_order_id when the table has been freed.
func (r *TableRepository) Update(table *models.Table) (*models.Table, error) {
	if err := r.db.Model(table).Select("*").Updates(table).Error; err != nil {
		return nil, err
	}
	return table, nil
}

func (r *TableRepository) Delete(id string) error {
	return r.db.Delete(&models.Table{}, "id = ?", id).Error
}
