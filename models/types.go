package models

// Closed value sets shared by the domain entities. Values are stored as
// uppercase strings so they survive round-trips through the database and the
// websocket payloads unchanged.

type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleWaiter UserRole = "WAITER"
	RoleChef   UserRole = "CHEF"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleWaiter, RoleChef:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderPreparing OrderStatus = "PREPARING"
	OrderReady     OrderStatus = "READY"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type TableStatus string

const (
	TableAvailable TableStatus = "AVAILABLE"
	TableOccupied  TableStatus = "OCCUPIED"
	TableReserved  TableStatus = "RESERVED"
	TableCleaning  TableStatus = "CLEANING"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableCleaning:
		return true
	}
	return false
}

type MenuItemCategory string

const (
	CategoryAppetizer  MenuItemCategory = "APPETIZER"
	CategoryMainCourse MenuItemCategory = "MAIN_COURSE"
	CategoryDessert    MenuItemCategory = "DESSERT"
	CategoryBeverage   MenuItemCategory = "BEVERAGE"
	CategorySpecial    MenuItemCategory = "SPECIAL"
)

func (c MenuItemCategory) Valid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage, CategorySpecial:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "CASH"
	PaymentCard    PaymentMethod = "CARD"
	PaymentDigital PaymentMethod = "DIGITAL"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentDigital:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPartial  PaymentStatus = "PARTIAL"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}
