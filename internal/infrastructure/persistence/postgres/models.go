package postgres

import (
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/google/uuid"
)

// PaymentModel is the row shape of the payments table.
type PaymentModel struct {
	ID                 uuid.UUID
	Status             string
	CardNumberLastFour string
	ExpiryMonth        int
	ExpiryYear         int
	Currency           string
	Amount             int64
	CreatedAt          time.Time
}

func toDomainModel(m PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:                 m.ID,
		Status:             domain.PaymentStatus(m.Status),
		CardNumberLastFour: m.CardNumberLastFour,
		ExpiryMonth:        m.ExpiryMonth,
		ExpiryYear:         m.ExpiryYear,
		Currency:           m.Currency,
		Amount:             m.Amount,
		CreatedAt:          m.CreatedAt.UTC(),
	}
}

func toDBModel(p *domain.Payment) PaymentModel {
	return PaymentModel{
		ID:                 p.ID,
		Status:             string(p.Status),
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
		CreatedAt:          p.CreatedAt,
	}
}
