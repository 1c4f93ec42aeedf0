package application

import (
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/google/uuid"
)

const EventPaymentRecorded = "payment.recorded"

// PaymentRecorded is emitted once per stored payment. It never carries card data.
type PaymentRecorded struct {
	Type      string               `json:"type"`
	ID        uuid.UUID            `json:"id"`
	Status    domain.PaymentStatus `json:"status"`
	Currency  string               `json:"currency"`
	Amount    int64                `json:"amount"`
	CreatedAt time.Time            `json:"created_at"`
}

func NewPaymentRecorded(p *domain.Payment) PaymentRecorded {
	return PaymentRecorded{
		Type:      EventPaymentRecorded,
		ID:        p.ID,
		Status:    p.Status,
		Currency:  p.Currency,
		Amount:    p.Amount,
		CreatedAt: p.CreatedAt,
	}
}

// NopPublisher discards events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(PaymentRecorded) {}
