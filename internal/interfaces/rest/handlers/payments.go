package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/interfaces/rest"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// PaymentService is the part of services.PaymentService the handlers use.
type PaymentService interface {
	Submit(ctx context.Context, req domain.PaymentRequest) *domain.Payment
	Get(ctx context.Context, id string) (*domain.Payment, error)
}

type Handlers struct {
	payments PaymentService
	logger   *slog.Logger
}

func NewHandlers(payments PaymentService, logger *slog.Logger) *Handlers {
	return &Handlers{
		payments: payments,
		logger:   logger,
	}
}

// SubmitPayment answers 200 with the recorded payment for any decodable body.
func (h *Handlers) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var body rest.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		rest.WriteError(w, domain.NewInvalidBodyError(err), h.logger)
		return
	}

	payment := h.payments.Submit(r.Context(), body.ToDomain())

	rest.WriteJSON(w, http.StatusOK, rest.ToPaymentResponse(payment), h.logger)
}

// GetPayment answers 404 with a null body when the payment does not exist.
func (h *Handlers) GetPayment(w http.ResponseWriter, r *http.Request) {
	payment, err := h.payments.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if domain.IsNotFound(err) {
			rest.WriteJSON(w, http.StatusNotFound, nil, h.logger)
			return
		}
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToPaymentResponse(payment), h.logger)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
