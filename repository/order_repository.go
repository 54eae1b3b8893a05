package repository

import (
	"gorm.io/gorm"

	"github.com/mvegadev/comanda/models"
)

type OrderRepository struct {
	db *gorm.DB
}

// activeStatuses are the non-terminal order states.
var activeStatuses = []models.OrderStatus{
	models.OrderPending, models.OrderConfirmed, models.OrderPreparing, models.OrderReady,
}

func (r *OrderRepository) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindAll() ([]*models.Order, error) {
	var orders []*models.Order
	err := r.db.Preload("Items").Order("created_at asc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByStatus(status models.OrderStatus) ([]*models.Order, error) {
	var orders []*models.Order
	err := r.db.Preload("Items").Where("status = ?", status).Order("created_at asc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByTable(tableID string) ([]*models.Order, error) {
	var orders []*models.Order
	err := r.db.Preload("Items").Where("table_id = ?", tableID).Order("created_at asc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByWaiter(waiterID string) ([]*models.Order, error) {
	var orders []*models.Order
	err := r.db.Preload("Items").Where("waiter_id = ?", waiterID).Order("created_at asc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindActive() ([]*models.Order, error) {
	var orders []*models.Order
	err := r.db.Preload("Items").Where("status IN ?", activeStatuses).Order("created_at asc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Save(order *models.Order) (*models.Order, error) {
	if err := r.db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// Update rewrites the item lines wholesale so removed lines do not linger.
func (r *OrderRepository) Update(order *models.Order) (*models.Order, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if len(order.Items) > 0 {
			if err := tx.Create(order.Items).Error; err != nil {
				return err
			}
		}
		return tx.Omit("Items").Save(order).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, "id = ?", id).Error
	})
}
