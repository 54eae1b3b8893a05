package models

import (
	"fmt"
	"time"
)

// Table is a physical table in the dining room. CurrentOrderID points at the
// order being served there while the table is OCCUPIED. Freeing a table always
// routes through CLEANING; MarkAsAvailable returns it to service once the
// cleaning is done.
type Table struct {
	ID             string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Number         int         `gorm:"uniqueIndex;not null" json:"number"`
	Capacity       int         `gorm:"not null" json:"capacity"`
	Status         TableStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE'" json:"status"`
	CurrentOrderID *string     `gorm:"type:varchar(36)" json:"current_order_id,omitempty"`
	Location       string      `gorm:"type:varchar(100);not null;default:'main'" json:"location"`
	CreatedAt      time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null" json:"updated_at"`
}

func NewTable(id string, number, capacity int, location string, now time.Time) (*Table, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
	}
	if location == "" {
		location = "main"
	}
	return &Table{
		ID:        id,
		Number:    number,
		Capacity:  capacity,
		Status:    TableAvailable,
		Location:  location,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (t *Table) IsAvailable() bool { return t.Status == TableAvailable }
func (t *Table) IsOccupied() bool  { return t.Status == TableOccupied }

// Occupy binds the table to an order. Only AVAILABLE tables can be occupied.
func (t *Table) Occupy(orderID string, now time.Time) error {
	if !t.IsAvailable() {
		return fmt.Errorf("%w: table %d is not available", ErrTableUnavailable, t.Number)
	}
	t.Status = TableOccupied
	t.CurrentOrderID = &orderID
	t.UpdatedAt = now
	return nil
}

// Free releases the table into CLEANING and clears the order reference. It is
// unconditional; freeing an already-free table is harmless.
func (t *Table) Free(now time.Time) {
	t.Status = TableCleaning
	t.CurrentOrderID = nil
	t.UpdatedAt = now
}

// MarkAsAvailable returns the table to service after cleaning.
func (t *Table) MarkAsAvailable(now time.Time) {
	t.Status = TableAvailable
	t.UpdatedAt = now
}

func (t *Table) Reserve(now time.Time) error {
	if !t.IsAvailable() {
		return fmt.Errorf("%w: table %d cannot be reserved", ErrTableUnavailable, t.Number)
	}
	t.Status = TableReserved
	t.UpdatedAt = now
	return nil
}

func (t *Table) UpdateCapacity(capacity int, now time.Time) error {
	if capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
	}
	t.Capacity = capacity
	t.UpdatedAt = now
	return nil
}

// HoldsOrder reports whether the table currently references the given order.
func (t *Table) HoldsOrder(orderID string) bool {
	return t.CurrentOrderID != nil && *t.CurrentOrderID == orderID
}
