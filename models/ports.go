package models

// Repository ports. Implementations return (nil, nil) for an absent entity;
// translating absence into ErrNotFound is the use-case layer's job. Backing
// technology is invisible to the core.

type UserRepository interface {
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll() ([]*User, error)
	FindByRole(role UserRole) ([]*User, error)
	Save(user *User) (*User, error)
	Update(user *User) (*User, error)
	Delete(id string) error
}

type TableRepository interface {
	FindByID(id string) (*Table, error)
	FindAll() ([]*Table, error)
	FindByStatus(status TableStatus) ([]*Table, error)
	FindByNumber(number int) (*Table, error)
	Save(table *Table) (*Table, error)
	Update(table *Table) (*Table, error)
	Delete(id string) error
}

type MenuItemRepository interface {
	FindByID(id string) (*MenuItem, error)
	FindAll() ([]*MenuItem, error)
	FindAvailable() ([]*MenuItem, error)
	FindByCategory(category MenuItemCategory) ([]*MenuItem, error)
	Save(item *MenuItem) (*MenuItem, error)
	Update(item *MenuItem) (*MenuItem, error)
	Delete(id string) error
}

type OrderRepository interface {
	FindByID(id string) (*Order, error)
	FindAll() ([]*Order, error)
	FindByStatus(status OrderStatus) ([]*Order, error)
	FindByTable(tableID string) ([]*Order, error)
	FindByWaiter(waiterID string) ([]*Order, error)
	FindActive() ([]*Order, error)
	Save(order *Order) (*Order, error)
	Update(order *Order) (*Order, error)
	Delete(id string) error
}

type PaymentRepository interface {
	FindByID(id string) (*Payment, error)
	FindByOrder(orderID string) (*Payment, error)
	FindAll() ([]*Payment, error)
	Save(payment *Payment) (*Payment, error)
	Update(payment *Payment) (*Payment, error)
}

// EventSink is the publish-only notification channel. Emit is fire-and-forget:
// delivery is best-effort, at-most-once, and failures are never surfaced to
// the publisher.
type EventSink interface {
	Emit(event string, payload any)
}
