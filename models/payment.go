package models

import (
	"fmt"
	"time"
)

// Payment is the settlement record for exactly one delivered order. PaidAmount
// accumulates across partial payments and is deliberately not clamped to
// Amount, so cash overpayment stays representable and Change can be computed.
type Payment struct {
	ID         string        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	OrderID    string        `gorm:"type:varchar(36);uniqueIndex;not null" json:"order_id"`
	Amount     float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method     PaymentMethod `gorm:"type:varchar(20);not null" json:"method"`
	Status     PaymentStatus `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	PaidAmount float64       `gorm:"type:decimal(10,2);not null;default:0" json:"paid_amount"`
	CreatedAt  time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"not null" json:"updated_at"`
	PaidAt     *time.Time    `json:"paid_at,omitempty"`
}

func NewPayment(id, orderID string, amount float64, method PaymentMethod, now time.Time) (*Payment, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}
	return &Payment{
		ID:        id,
		OrderID:   orderID,
		Amount:    amount,
		Method:    method,
		Status:    PaymentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Pending is the amount still owed.
func (p *Payment) Pending() float64 {
	if remaining := p.Amount - p.PaidAmount; remaining > 0 {
		return remaining
	}
	return 0
}

// Change is the amount paid beyond what was owed.
func (p *Payment) Change() float64 {
	if change := p.PaidAmount - p.Amount; change > 0 {
		return change
	}
	return 0
}

func (p *Payment) IsPaid() bool    { return p.Status == PaymentPaid }
func (p *Payment) IsPartial() bool { return p.Status == PaymentPartial }
func (p *Payment) IsPending() bool { return p.Status == PaymentPending }

// ProcessPayment applies one payment installment. The payment becomes PAID
// once the accumulated amount covers what is owed, PARTIAL otherwise.
func (p *Payment) ProcessPayment(amount float64, now time.Time) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	}

	p.PaidAmount += amount

	if p.PaidAmount >= p.Amount {
		p.Status = PaymentPaid
		p.PaidAt = &now
	} else {
		p.Status = PaymentPartial
	}

	p.UpdatedAt = now
	return nil
}

// Refund is terminal; only fully paid payments can be refunded.
func (p *Payment) Refund(now time.Time) error {
	if !p.IsPaid() {
		return fmt.Errorf("%w: only paid payments can be refunded", ErrInvalidState)
	}
	p.Status = PaymentRefunded
	p.UpdatedAt = now
	return nil
}
