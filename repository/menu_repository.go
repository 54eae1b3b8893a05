package repository

import (
	"gorm.io/gorm"

	"github.com/mvegadev/comanda/models"
)

type MenuItemRepository struct {
	db *gorm.DB
}

func (r *MenuItemRepository) FindByID(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) FindAll() ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	err := r.db.Order("category asc, name asc").Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindAvailable() ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	err := r.db.Where("is_available = ?", true).Order("category asc, name asc").Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindByCategory(category models.MenuItemCategory) ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	err := r.db.Where("category = ?", category).Order("name asc").Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) Save(item *models.MenuItem) (*models.MenuItem, error) {
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Update persists the full row so ToggleAvailability can write false.
func (r *MenuItemRepository) Update(item *models.MenuItem) (*models.MenuItem, error) {
	if err := r.db.Model(item).Select("*").Updates(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MenuItemRepository) Delete(id string) error {
	return r.db.Delete(&models.MenuItem{}, "id = ?", id).Error
}
