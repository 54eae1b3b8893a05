// Package repository implements the domain repository ports on gorm. The
// use-case layer never sees gorm: absence is reported as (nil, nil), not as
// gorm.ErrRecordNotFound.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mvegadev/comanda/models"
)

// Repositories bundles one implementation per port over a shared connection.
type Repositories struct {
	Users    *UserRepository
	Tables   *TableRepository
	Menu     *MenuItemRepository
	Orders   *OrderRepository
	Payments *PaymentRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    &UserRepository{db: db},
		Tables:   &TableRepository{db: db},
		Menu:     &MenuItemRepository{db: db},
		Orders:   &OrderRepository{db: db},
		Payments: &PaymentRepository{db: db},
	}
}

// AutoMigrate creates or updates the schema for every domain entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
