// Package domain holds the payment model, the field validation rules and the
// policy that turns an acquiring bank outcome into a payment status.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the final outcome of a submitted payment.
type PaymentStatus string

const (
	// StatusAuthorized means the acquiring bank explicitly confirmed the payment.
	StatusAuthorized PaymentStatus = "Authorized"
	// StatusDeclined means the bank was reached and refused the payment.
	StatusDeclined PaymentStatus = "Declined"
	// StatusRejected means the gateway decided without a bank answer: the
	// request was invalid or the bank could not be reached.
	StatusRejected PaymentStatus = "Rejected"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusAuthorized, StatusDeclined, StatusRejected:
		return true
	default:
		return false
	}
}

// PaymentRequest is a card payment as submitted by a merchant. It is never stored.
type PaymentRequest struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	Amount      int64
	CVV         string
}

// Payment is the recorded outcome of one submission. It is created once and
// never mutated afterwards.
type Payment struct {
	ID                 uuid.UUID
	Status             PaymentStatus
	CardNumberLastFour string
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	Amount             int64
	CreatedAt          time.Time
}

// NewPayment builds the record for req. Only the last four digits of a
// well-formed card number are kept.
func NewPayment(id uuid.UUID, req PaymentRequest, status PaymentStatus, createdAt time.Time) *Payment {
	return &Payment{
		ID:                 id,
		Status:             status,
		CardNumberLastFour: req.CardNumberLastFour(),
		ExpiryMonth:        req.ExpiryMonth,
		ExpiryYear:         req.ExpiryYear,
		Currency:           req.Currency,
		Amount:             req.Amount,
		CreatedAt:          createdAt.UTC(),
	}
}
