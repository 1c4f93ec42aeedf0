package rest

import (
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/google/uuid"
)

// PaymentRequest is the submission body. Fields left out decode to zero
// values and fail validation downstream.
type PaymentRequest struct {
	CardNumber  string `json:"cardNumber"`
	ExpiryMonth int    `json:"expiryMonth"`
	ExpiryYear  int    `json:"expiryYear"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         string `json:"cvv"`
}

func (r PaymentRequest) ToDomain() domain.PaymentRequest {
	return domain.PaymentRequest{
		CardNumber:  r.CardNumber,
		ExpiryMonth: r.ExpiryMonth,
		ExpiryYear:  r.ExpiryYear,
		Currency:    r.Currency,
		Amount:      r.Amount,
		CVV:         r.CVV,
	}
}

type PaymentResponse struct {
	ID                 uuid.UUID            `json:"id"`
	Status             domain.PaymentStatus `json:"status"`
	CardNumberLastFour string               `json:"cardNumberLastFour"`
	ExpiryMonth        int                  `json:"expiryMonth"`
	ExpiryYear         int                  `json:"expiryYear"`
	Currency           string               `json:"currency"`
	Amount             int64                `json:"amount"`
	CreatedAt          time.Time            `json:"createdAt"`
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		Status:             p.Status,
		CardNumberLastFour: p.CardNumberLastFour,
		ExpiryMonth:        p.ExpiryMonth,
		ExpiryYear:         p.ExpiryYear,
		Currency:           p.Currency,
		Amount:             p.Amount,
		CreatedAt:          p.CreatedAt,
	}
}
