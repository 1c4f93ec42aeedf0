package application

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/google/uuid"
)

// BankClient is the port for the acquiring bank. Implementations make exactly
// one call per Authorize and fold every failure into domain.BankUnreachable.
type BankClient interface {
	Authorize(ctx context.Context, req BankAuthorizationRequest) domain.BankOutcome
}

// PaymentStore is the port for persistence. Get returns a DomainError with
// code PAYMENT_NOT_FOUND when no payment has the given ID.
type PaymentStore interface {
	Put(ctx context.Context, payment *domain.Payment) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
}

// EventPublisher is the port for outcome events. Publish must not block on
// the broker.
type EventPublisher interface {
	Publish(event PaymentRecorded)
}

type BankAuthorizationRequest struct {
	CardNumber string
	ExpiryDate string
	Currency   string
	Amount     int64
	CVV        string
}

// NewBankAuthorizationRequest copies the request fields and formats the
// expiry as MM/YYYY.
func NewBankAuthorizationRequest(req domain.PaymentRequest) BankAuthorizationRequest {
	return BankAuthorizationRequest{
		CardNumber: req.CardNumber,
		ExpiryDate: fmt.Sprintf("%02d/%04d", req.ExpiryMonth, req.ExpiryYear),
		Currency:   req.Currency,
		Amount:     req.Amount,
		CVV:        req.CVV,
	}
}
