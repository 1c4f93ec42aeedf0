package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/application"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/google/uuid"
)

// Metrics is what the service reports about each submission.
type Metrics interface {
	PaymentRecorded(status domain.PaymentStatus)
	BankCall(outcome domain.BankOutcome, took time.Duration)
	StoreError(op string)
}

type PaymentService struct {
	bankClient application.BankClient
	store      application.PaymentStore
	events     application.EventPublisher
	metrics    Metrics
	logger     *slog.Logger
	now        func() time.Time
}

func NewPaymentService(
	bankClient application.BankClient,
	store application.PaymentStore,
	events application.EventPublisher,
	metrics Metrics,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		bankClient: bankClient,
		store:      store,
		events:     events,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock replaces the time source used for expiry checks and timestamps.
func (s *PaymentService) WithClock(now func() time.Time) *PaymentService {
	s.now = now
	return s
}

// Submit validates req, forwards it to the bank when valid and records the
// outcome. It always returns a payment: any failure along the way ends as
// Rejected rather than an error.
func (s *PaymentService) Submit(ctx context.Context, req domain.PaymentRequest) (payment *domain.Payment) {
	id := uuid.New()
	now := s.now()
	logger := s.logger.With("payment_id", id)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("payment pipeline panicked", "panic", r)
			payment = domain.NewPayment(id, req, domain.StatusRejected, now)
			s.recordRecovered(ctx, payment, logger)
		}
	}()

	valid := req.Valid(now)

	outcome := domain.BankUnreachable
	if valid {
		outcome = s.authorize(ctx, req)
	} else {
		logger.Info("payment request failed validation")
	}

	status := domain.ResolveStatus(valid, outcome)
	payment = domain.NewPayment(id, req, status, now)

	s.record(ctx, payment, logger)
	return payment
}

// Get returns the stored payment for id. A malformed id is reported as not
// found.
func (s *PaymentService) Get(ctx context.Context, id string) (*domain.Payment, error) {
	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.NewInvalidPaymentIDError(id, err)
	}

	payment, err := s.store.Get(ctx, paymentID)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.metrics.StoreError("get")
			s.logger.Error("failed to load payment", "payment_id", paymentID, "error", err)
		}
		return nil, err
	}

	return payment, nil
}

func (s *PaymentService) authorize(ctx context.Context, req domain.PaymentRequest) domain.BankOutcome {
	start := time.Now()
	outcome := s.bankClient.Authorize(ctx, application.NewBankAuthorizationRequest(req))
	s.metrics.BankCall(outcome, time.Since(start))
	return outcome
}

// record stores and announces payment. Store failures are logged and
// swallowed; the caller still gets the payment.
func (s *PaymentService) record(ctx context.Context, payment *domain.Payment, logger *slog.Logger) {
	// the outcome is stored even if the caller went away
	storeCtx := context.WithoutCancel(ctx)

	if err := s.put(storeCtx, payment); err != nil {
		s.metrics.StoreError("put")
		logger.Error("failed to store payment", "status", payment.Status, "error", err)
	}

	s.metrics.PaymentRecorded(payment.Status)
	s.events.Publish(application.NewPaymentRecorded(payment))

	logger.Info("payment recorded",
		"status", payment.Status,
		"currency", payment.Currency,
		"amount", payment.Amount,
	)
}

// recordRecovered records a payment built after a panic. A second panic while
// recording is logged and dropped.
func (s *PaymentService) recordRecovered(ctx context.Context, payment *domain.Payment, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("failed to record recovered payment", "panic", r)
		}
	}()
	s.record(ctx, payment, logger)
}

func (s *PaymentService) put(ctx context.Context, payment *domain.Payment) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewStoreUnavailableError("put", fmt.Errorf("panic: %v", r))
		}
	}()
	return s.store.Put(ctx, payment)
}
