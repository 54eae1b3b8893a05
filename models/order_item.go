package models

import (
	"fmt"
	"time"
)

// OrderItem is one line within an order. Name and unit price are denormalized
// snapshots taken from the menu at ordering time, so historical orders are
// immune to later menu price changes.
type OrderItem struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderID      string    `gorm:"type:varchar(36);index;not null" json:"order_id"`
	MenuItemID   string    `gorm:"type:varchar(36);not null" json:"menu_item_id"`
	MenuItemName string    `gorm:"type:varchar(255);not null" json:"menu_item_name"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	UnitPrice    float64   `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func NewOrderItem(id, menuItemID, menuItemName string, quantity int, unitPrice float64, notes string, now time.Time) (*OrderItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be greater than 0", ErrValidation)
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("%w: unit price cannot be negative", ErrValidation)
	}
	return &OrderItem{
		ID:           id,
		MenuItemID:   menuItemID,
		MenuItemName: menuItemName,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		Notes:        notes,
		CreatedAt:    now,
	}, nil
}

// Total is the line total: quantity times the snapshotted unit price.
func (i *OrderItem) Total() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

func (i *OrderItem) UpdateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be greater than 0", ErrValidation)
	}
	i.Quantity = quantity
	return nil
}

// AddQuantity is used when a duplicate menu line is merged into this one.
func (i *OrderItem) AddQuantity(amount int) {
	i.Quantity += amount
}

func (i *OrderItem) UpdateNotes(notes string) {
	i.Notes = notes
}
