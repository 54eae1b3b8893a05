package models

import (
	"fmt"
	"time"
)

// MenuItem is an entry in the menu catalog. Orders never reference it
// directly; they carry their own name/price snapshot.
type MenuItem struct {
	ID              string           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name            string           `gorm:"type:varchar(255);not null" json:"name"`
	Description     string           `gorm:"type:text" json:"description"`
	Price           float64          `gorm:"type:decimal(10,2);not null" json:"price"`
	Category        MenuItemCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	ImageURL        *string          `gorm:"type:varchar(255)" json:"image_url,omitempty"`
	IsAvailable     bool             `gorm:"not null;default:true" json:"is_available"`
	PreparationTime int              `gorm:"not null;default:15" json:"preparation_time"`
	Ingredients     []string         `gorm:"serializer:json" json:"ingredients"`
	CreatedAt       time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`
}

// DefaultPreparationTime is assumed when the kitchen gives no estimate.
const DefaultPreparationTime = 15

func NewMenuItem(id, name, description string, price float64, category MenuItemCategory, imageURL *string, preparationTime int, ingredients []string, now time.Time) (*MenuItem, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if preparationTime <= 0 {
		preparationTime = DefaultPreparationTime
	}
	return &MenuItem{
		ID:              id,
		Name:            name,
		Description:     description,
		Price:           price,
		Category:        category,
		ImageURL:        imageURL,
		IsAvailable:     true,
		PreparationTime: preparationTime,
		Ingredients:     ingredients,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (m *MenuItem) UpdatePrice(price float64, now time.Time) error {
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	m.Price = price
	m.UpdatedAt = now
	return nil
}

func (m *MenuItem) ToggleAvailability(now time.Time) {
	m.IsAvailable = !m.IsAvailable
	m.UpdatedAt = now
}

// MenuItemPatch is a partial update; nil fields are left untouched.
type MenuItemPatch struct {
	Name            *string           `json:"name,omitempty"`
	Description     *string           `json:"description,omitempty"`
	Price           *float64          `json:"price,omitempty"`
	Category        *MenuItemCategory `json:"category,omitempty"`
	ImageURL        *string           `json:"image_url,omitempty"`
	IsAvailable     *bool             `json:"is_available,omitempty"`
	PreparationTime *int              `json:"preparation_time,omitempty"`
	Ingredients     []string          `json:"ingredients,omitempty"`
}

// Update applies the patch field by field.
func (m *MenuItem) Update(patch MenuItemPatch, now time.Time) error {
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.Price != nil {
		if err := m.UpdatePrice(*patch.Price, now); err != nil {
			return err
		}
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return fmt.Errorf("%w: unknown category %q", ErrValidation, *patch.Category)
		}
		m.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		m.ImageURL = patch.ImageURL
	}
	if patch.IsAvailable != nil {
		m.IsAvailable = *patch.IsAvailable
	}
	if patch.PreparationTime != nil && *patch.PreparationTime > 0 {
		m.PreparationTime = *patch.PreparationTime
	}
	if patch.Ingredients != nil {
		m.Ingredients = patch.Ingredients
	}
	m.UpdatedAt = now
	return nil
}
