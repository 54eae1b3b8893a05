package repository

import (
	"gorm.io/gorm"

	"github.com/mvegadev/comanda/models"
)

type PaymentRepository struct {
	db *gorm.DB
}

func (r *PaymentRepository) FindByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) FindByOrder(orderID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "order_id = ?", orderID).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) FindAll() ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.Order("created_at asc").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) Save(payment *models.Payment) (*models.Payment, error) {
	if err := r.db.Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *PaymentRepository) Update(payment *models.Payment) (*models.Payment, error) {
	if err := r.db.Model(payment).Select("*").Updates(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}
