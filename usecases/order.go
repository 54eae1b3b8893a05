package usecases

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mvegadev/comanda/models"
)

// OrderLine is one requested line of a new or updated order. Name and price
// are resolved from the menu catalog at execution time, never trusted from
// the caller.
type OrderLine struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	Notes      string `json:"notes"`
}

// OrderPatch is a partial update for a still-pending order.
type OrderPatch struct {
	Lines []OrderLine `json:"items,omitempty"`
	Notes *string     `json:"notes,omitempty"`
}

// OrderUseCases orchestrates the order lifecycle across the order, table and
// menu repositories and publishes the resulting domain events.
type OrderUseCases struct {
	orders models.OrderRepository
	tables models.TableRepository
	menu   models.MenuItemRepository
	events models.EventSink
	clock  models.Clock
}

func NewOrderUseCases(orders models.OrderRepository, tables models.TableRepository, menu models.MenuItemRepository, events models.EventSink, clock models.Clock) *OrderUseCases {
	return &OrderUseCases{orders: orders, tables: tables, menu: menu, events: events, clock: clock}
}

// buildItems resolves each requested line against the menu catalog and builds
// order items carrying their own name/price snapshot.
func (uc *OrderUseCases) buildItems(orderID string, lines []OrderLine) ([]models.OrderItem, error) {
	now := uc.clock.Now()
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		menuItem, err := uc.menu.FindByID(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, fmt.Errorf("%w: menu item %s", models.ErrNotFound, line.MenuItemID)
		}
		item, err := models.NewOrderItem(uuid.NewString(), menuItem.ID, menuItem.Name, line.Quantity, menuItem.Price, line.Notes, now)
		if err != nil {
			return nil, err
		}
		item.OrderID = orderID
		items = append(items, *item)
	}
	return items, nil
}

// Create builds an order for an existing table, auto-confirms it so it enters
// the kitchen pipeline immediately, occupies the table and publishes both the
// created and confirmed events.
func (uc *OrderUseCases) Create(tableID, waiterID string, lines []OrderLine) (*models.Order, error) {
	table, err := uc.tables.FindByID(tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("%w: table %s", models.ErrNotFound, tableID)
	}

	now := uc.clock.Now()
	orderID := uuid.NewString()
	items, err := uc.buildItems(orderID, lines)
	if err != nil {
		return nil, err
	}

	order := models.NewOrder(orderID, tableID, waiterID, items, now)
	if err := order.Confirm(now); err != nil {
		return nil, err
	}

	saved, err := uc.orders.Save(order)
	if err != nil {
		return nil, err
	}

	if err := table.Occupy(order.ID, now); err != nil {
		return nil, err
	}
	if _, err := uc.tables.Update(table); err != nil {
		return nil, err
	}

	uc.events.Emit(models.EventOrderCreated, saved)
	uc.events.Emit(models.EventOrderConfirmed, saved)
	return saved, nil
}

func (uc *OrderUseCases) get(orderID string) (*models.Order, error) {
	order, err := uc.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %s", models.ErrNotFound, orderID)
	}
	return order, nil
}

// Update replaces the item lines and/or notes of a still-pending order.
func (uc *OrderUseCases) Update(orderID string, patch OrderPatch) (*models.Order, error) {
	order, err := uc.get(orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeModified() {
		return nil, fmt.Errorf("%w: order can no longer be modified", models.ErrInvalidState)
	}

	if patch.Lines != nil {
		items, err := uc.buildItems(order.ID, patch.Lines)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	if patch.Notes != nil {
		order.Notes = *patch.Notes
	}
	order.UpdatedAt = uc.clock.Now()

	updated, err := uc.orders.Update(order)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventOrderUpdated, updated)
	return updated, nil
}

// AddItem appends (or merges) one line into a still-pending order.
func (uc *OrderUseCases) AddItem(orderID string, line OrderLine) (*models.Order, error) {
	order, err := uc.get(orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeModified() {
		return nil, fmt.Errorf("%w: order can no longer be modified", models.ErrInvalidState)
	}

	items, err := uc.buildItems(order.ID, []OrderLine{line})
	if err != nil {
		return nil, err
	}
	order.AddItem(items[0], uc.clock.Now())

	updated, err := uc.orders.Update(order)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventOrderUpdated, updated)
	return updated, nil
}

// RemoveItem drops one line from a still-pending order.
func (uc *OrderUseCases) RemoveItem(orderID, itemID string) (*models.Order, error) {
	order, err := uc.get(orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeModified() {
		return nil, fmt.Errorf("%w: order can no longer be modified", models.ErrInvalidState)
	}

	order.RemoveItem(itemID, uc.clock.Now())

	updated, err := uc.orders.Update(order)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventOrderUpdated, updated)
	return updated, nil
}

// UpdateItemQuantity changes the quantity of one line of a still-pending order.
func (uc *OrderUseCases) UpdateItemQuantity(orderID, itemID string, quantity int) (*models.Order, error) {
	order, err := uc.get(orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanBeModified() {
		return nil, fmt.Errorf("%w: order can no longer be modified", models.ErrInvalidState)
	}

	if err := order.UpdateItemQuantity(itemID, quantity, uc.clock.Now()); err != nil {
		return nil, err
	}

	updated, err := uc.orders.Update(order)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventOrderUpdated, updated)
	return updated, nil
}

func (uc *OrderUseCases) Confirm(orderID string) (*models.Order, error) {
	return uc.transition(orderID, models.EventOrderConfirmed, (*models.Order).Confirm)
}

func (uc *OrderUseCases) StartPreparing(orderID string) (*models.Order, error) {
	return uc.transition(orderID, models.EventOrderPreparing, (*models.Order).StartPreparing)
}

func (uc *OrderUseCases) MarkAsReady(orderID string) (*models.Order, error) {
	return uc.transition(orderID, models.EventOrderReady, (*models.Order).MarkAsReady)
}

// Deliver completes the order and frees its table into CLEANING, provided the
// table still references this order.
func (uc *OrderUseCases) Deliver(orderID string) (*models.Order, error) {
	order, err := uc.get(orderID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if err := order.Deliver(now); err != nil {
		return nil, err
	}
	delivered, err := uc.orders.Update(order)
	if err != nil {
		return nil, err
	}

	if err := uc.freeTableOf(order); err != nil {
		return nil, err
	}

	uc.events.Emit(models.EventOrderDelivered, delivered)
	return delivered, nil
}

// Cancel aborts the order from any non-delivered state and releases the table
// it was occupying.
func (uc *OrderUseCases) Cancel(orderID, reason string) (*models.Order, error) {
	order, err := uc.get(orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(reason, uc.clock.Now()); err != nil {
		return nil, err
	}
	cancelled, err := uc.orders.Update(order)
	if err != nil {
		return nil, err
	}

	if err := uc.freeTableOf(order); err != nil {
		return nil, err
	}

	uc.events.Emit(models.EventOrderCancelled, cancelled)
	return cancelled, nil
}

// freeTableOf releases the order's table. The table is only freed while it
// still references this order, so a table reassigned to a newer order is left
// alone.
func (uc *OrderUseCases) freeTableOf(order *models.Order) error {
	table, err := uc.tables.FindByID(order.TableID)
	if err != nil {
		return err
	}
	if table == nil || !table.HoldsOrder(order.ID) {
		return nil
	}

	table.Free(uc.clock.Now())
	if _, err := uc.tables.Update(table); err != nil {
		return err
	}
	uc.events.Emit(models.EventTableFreed, table)
	return nil
}

// transition runs a single guarded state change, persists it and emits one
// event.
func (uc *OrderUseCases) transition(orderID, event string, mutate func(*models.Order, time.Time) error) (*models.Order, error) {
	order, err := uc.get(orderID)
	if err != nil {
		return nil, err
	}
	if err := mutate(order, uc.clock.Now()); err != nil {
		return nil, err
	}
	updated, err := uc.orders.Update(order)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(event, updated)
	return updated, nil
}

func (uc *OrderUseCases) Get(orderID string) (*models.Order, error) {
	return uc.get(orderID)
}

func (uc *OrderUseCases) ListAll() ([]*models.Order, error) {
	return uc.orders.FindAll()
}

// ListActive returns orders still moving through the pipeline.
func (uc *OrderUseCases) ListActive() ([]*models.Order, error) {
	return uc.orders.FindActive()
}

func (uc *OrderUseCases) ListByStatus(status models.OrderStatus) ([]*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", models.ErrValidation, status)
	}
	return uc.orders.FindByStatus(status)
}

func (uc *OrderUseCases) ListByTable(tableID string) ([]*models.Order, error) {
	return uc.orders.FindByTable(tableID)
}

func (uc *OrderUseCases) ListByWaiter(waiterID string) ([]*models.Order, error) {
	return uc.orders.FindByWaiter(waiterID)
}
