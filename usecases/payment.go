package usecases

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mvegadev/comanda/models"
)

// PaymentUseCases orchestrates settlement of delivered orders.
type PaymentUseCases struct {
	payments models.PaymentRepository
	orders   models.OrderRepository
	tables   models.TableRepository
	events   models.EventSink
	clock    models.Clock
}

func NewPaymentUseCases(payments models.PaymentRepository, orders models.OrderRepository, tables models.TableRepository, events models.EventSink, clock models.Clock) *PaymentUseCases {
	return &PaymentUseCases{payments: payments, orders: orders, tables: tables, events: events, clock: clock}
}

// Create opens the settlement record for a delivered order. At most one
// payment exists per order.
func (uc *PaymentUseCases) Create(orderID string, amount float64, method models.PaymentMethod) (*models.Payment, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", models.ErrValidation, method)
	}

	order, err := uc.orders.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order %s", models.ErrNotFound, orderID)
	}
	if !order.IsDelivered() {
		return nil, fmt.Errorf("%w: payment requires delivered order", models.ErrInvalidState)
	}

	existing, err := uc.payments.FindByOrder(orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: order %s already has a payment", models.ErrDuplicatePayment, orderID)
	}

	payment, err := models.NewPayment(uuid.NewString(), orderID, amount, method, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	saved, err := uc.payments.Save(payment)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventPaymentCreated, saved)
	return saved, nil
}

func (uc *PaymentUseCases) get(paymentID string) (*models.Payment, error) {
	payment, err := uc.payments.FindByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: payment %s", models.ErrNotFound, paymentID)
	}
	return payment, nil
}

// Process applies one installment. Reaching PAID releases the order's table
// (if it is still bound to this order) and publishes the completed event;
// otherwise the partial event is published.
func (uc *PaymentUseCases) Process(paymentID string, amount float64) (*models.Payment, error) {
	payment, err := uc.get(paymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.ProcessPayment(amount, uc.clock.Now()); err != nil {
		return nil, err
	}
	updated, err := uc.payments.Update(payment)
	if err != nil {
		return nil, err
	}

	if updated.IsPaid() {
		if err := uc.freeTableOf(updated.OrderID); err != nil {
			return nil, err
		}
		uc.events.Emit(models.EventPaymentCompleted, updated)
	} else {
		uc.events.Emit(models.EventPaymentPartial, updated)
	}
	return updated, nil
}

func (uc *PaymentUseCases) freeTableOf(orderID string) error {
	order, err := uc.orders.FindByID(orderID)
	if err != nil || order == nil {
		return err
	}
	table, err := uc.tables.FindByID(order.TableID)
	if err != nil {
		return err
	}
	// usually a no-op: the table was already freed at delivery
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

func (uc *PaymentUseCases) Refund(paymentID string) (*models.Payment, error) {
	payment, err := uc.get(paymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.Refund(uc.clock.Now()); err != nil {
		return nil, err
	}
	refunded, err := uc.payments.Update(payment)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventPaymentRefunded, refunded)
	return refunded, nil
}

func (uc *PaymentUseCases) Get(paymentID string) (*models.Payment, error) {
	return uc.get(paymentID)
}

func (uc *PaymentUseCases) GetByOrder(orderID string) (*models.Payment, error) {
	payment, err := uc.payments.FindByOrder(orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: no payment for order %s", models.ErrNotFound, orderID)
	}
	return payment, nil
}

func (uc *PaymentUseCases) ListAll() ([]*models.Payment, error) {
	return uc.payments.FindAll()
}
