package models

// Domain event names follow the entity:action convention. The payload is the
// full resulting entity, except deletions which carry only the id.
const (
	EventOrderCreated   = "order:created"
	EventOrderUpdated   = "order:updated"
	EventOrderConfirmed = "order:confirmed"
	EventOrderPreparing = "order:preparing"
	EventOrderReady     = "order:ready"
	EventOrderDelivered = "order:delivered"
	EventOrderCancelled = "order:cancelled"

	EventTableCreated   = "table:created"
	EventTableUpdated   = "table:updated"
	EventTableFreed     = "table:freed"
	EventTableAvailable = "table:available"
	EventTableReserved  = "table:reserved"
	EventTableDeleted   = "table:deleted"

	EventMenuItemCreated             = "menuItem:created"
	EventMenuItemUpdated             = "menuItem:updated"
	EventMenuItemAvailabilityChanged = "menuItem:availabilityChanged"
	EventMenuItemDeleted             = "menuItem:deleted"

	EventPaymentCreated   = "payment:created"
	EventPaymentCompleted = "payment:completed"
	EventPaymentPartial   = "payment:partial"
	EventPaymentRefunded  = "payment:refunded"

	EventUserCreated = "user:created"
	EventUserUpdated = "user:updated"
)
