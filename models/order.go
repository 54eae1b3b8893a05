package models

import (
	"fmt"
	"time"
)

// Order is a customer's request for menu items at a table. Status advances
// along PENDING -> CONFIRMED -> PREPARING -> READY -> DELIVERED, with
// CANCELLED reachable from every state except DELIVERED.
//
// Item mutation (AddItem, RemoveItem, UpdateItemQuantity) is only meaningful
// while CanBeModified() is true; the mutators themselves do not re-check, the
// use-case layer gates them.
type Order struct {
	ID          string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TableID     string      `gorm:"type:varchar(36);index;not null" json:"table_id"`
	WaiterID    string      `gorm:"type:varchar(36);index;not null" json:"waiter_id"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Notes       string      `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
	ConfirmedAt *time.Time  `json:"confirmed_at,omitempty"`
	DeliveredAt *time.Time  `json:"delivered_at,omitempty"`
}

func NewOrder(id, tableID, waiterID string, items []OrderItem, now time.Time) *Order {
	return &Order{
		ID:        id,
		TableID:   tableID,
		WaiterID:  waiterID,
		Items:     items,
		Status:    OrderPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Total is the sum of all line totals.
func (o *Order) Total() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Total()
	}
	return sum
}

// ItemCount is the sum of all line quantities.
func (o *Order) ItemCount() int {
	var count int
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// AddItem merges the item into an existing line for the same menu item by
// summing quantities; otherwise the line is appended.
func (o *Order) AddItem(item OrderItem, now time.Time) {
	for idx := range o.Items {
		if o.Items[idx].MenuItemID == item.MenuItemID {
			o.Items[idx].AddQuantity(item.Quantity)
			o.UpdatedAt = now
			return
		}
	}
	o.Items = append(o.Items, item)
	o.UpdatedAt = now
}

func (o *Order) RemoveItem(itemID string, now time.Time) {
	kept := o.Items[:0]
	for _, item := range o.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	o.Items = kept
	o.UpdatedAt = now
}

func (o *Order) UpdateItemQuantity(itemID string, quantity int, now time.Time) error {
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			if err := o.Items[idx].UpdateQuantity(quantity); err != nil {
				return err
			}
			o.UpdatedAt = now
			return nil
		}
	}
	return fmt.Errorf("%w: order item %s", ErrNotFound, itemID)
}

func (o *Order) Confirm(now time.Time) error {
	if o.Status != OrderPending {
		return fmt.Errorf("%w: only pending orders can be confirmed", ErrInvalidState)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: cannot confirm an order without items", ErrEmptyOrder)
	}
	o.Status = OrderConfirmed
	o.ConfirmedAt = &now
	o.UpdatedAt = now
	return nil
}

func (o *Order) StartPreparing(now time.Time) error {
	if o.Status != OrderConfirmed {
		return fmt.Errorf("%w: only confirmed orders can start preparation", ErrInvalidState)
	}
	o.Status = OrderPreparing
	o.UpdatedAt = now
	return nil
}

func (o *Order) MarkAsReady(now time.Time) error {
	if o.Status != OrderPreparing {
		return fmt.Errorf("%w: only orders in preparation can be marked ready", ErrInvalidState)
	}
	o.Status = OrderReady
	o.UpdatedAt = now
	return nil
}

func (o *Order) Deliver(now time.Time) error {
	if o.Status != OrderReady {
		return fmt.Errorf("%w: only ready orders can be delivered", ErrInvalidState)
	}
	o.Status = OrderDelivered
	o.DeliveredAt = &now
	o.UpdatedAt = now
	return nil
}

// Cancel is legal from every state except DELIVERED. A non-empty reason is
// appended to the notes, preserving whatever was there before.
func (o *Order) Cancel(reason string, now time.Time) error {
	if o.Status == OrderDelivered {
		return fmt.Errorf("%w: a delivered order cannot be cancelled", ErrInvalidState)
	}
	o.Status = OrderCancelled
	if reason != "" {
		o.Notes += fmt.Sprintf("\n[cancelled: %s]", reason)
	}
	o.UpdatedAt = now
	return nil
}

func (o *Order) IsPending() bool   { return o.Status == OrderPending }
func (o *Order) IsConfirmed() bool { return o.Status == OrderConfirmed }
func (o *Order) IsPreparing() bool { return o.Status == OrderPreparing }
func (o *Order) IsReady() bool     { return o.Status == OrderReady }
func (o *Order) IsDelivered() bool { return o.Status == OrderDelivered }
func (o *Order) IsCancelled() bool { return o.Status == OrderCancelled }

// CanBeModified reports whether item mutation is still allowed.
func (o *Order) CanBeModified() bool { return o.Status == OrderPending }
