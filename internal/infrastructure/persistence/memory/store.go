// Package memory keeps payments in process memory. Contents are lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/application"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]domain.Payment
}

func NewStore() *Store {
	return &Store{payments: make(map[uuid.UUID]domain.Payment)}
}

var _ application.PaymentStore = (*Store)(nil)

// Put stores a copy of payment, replacing any payment with the same ID.
func (s *Store) Put(_ context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments[payment.ID] = *payment
	return nil
}

func (s *Store) Get(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.payments[id]
	if !ok {
		return nil, domain.NewPaymentNotFoundError(id.String())
	}
	return &payment, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.payments)
}
