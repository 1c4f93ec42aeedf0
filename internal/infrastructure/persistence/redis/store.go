// Package redis stores payments as JSON documents in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/application"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/config"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

type paymentDocument struct {
	ID                 uuid.UUID `json:"id"`
	Status             string    `json:"status"`
	CardNumberLastFour string    `json:"card_number_last_four"`
	ExpiryMonth        int       `json:"expiry_month"`
	ExpiryYear         int       `json:"expiry_year"`
	Currency           string    `json:"currency"`
	Amount             int64     `json:"amount"`
	CreatedAt          time.Time `json:"created_at"`
}

type Store struct {
	client    goredis.UniversalClient
	keyPrefix string
	logger    *slog.Logger
}

// Connect opens a client and pings the server once.
func Connect(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	logger.Info("connecting to redis", "addr", cfg.Addr, "db", cfg.DB)

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("failed to ping redis", "error", err)
		_ = client.Close()
		return nil, err
	}

	return NewStore(client, cfg.KeyPrefix, logger), nil
}

func NewStore(client goredis.UniversalClient, keyPrefix string, logger *slog.Logger) *Store {
	return &Store{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

var _ application.PaymentStore = (*Store)(nil)

func (s *Store) key(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", s.keyPrefix, id)
}

// Put writes payment without expiry, replacing any previous value.
func (s *Store) Put(ctx context.Context, payment *domain.Payment) error {
	value, err := json.Marshal(paymentDocument{
		ID:                 payment.ID,
		Status:             string(payment.Status),
		CardNumberLastFour: payment.CardNumberLastFour,
		ExpiryMonth:        payment.ExpiryMonth,
		ExpiryYear:         payment.ExpiryYear,
		Currency:           payment.Currency,
		Amount:             payment.Amount,
		CreatedAt:          payment.CreatedAt,
	})
	if err != nil {
		return domain.NewStoreUnavailableError("put", err)
	}

	if err := s.client.Set(ctx, s.key(payment.ID), value, 0).Err(); err != nil {
		return domain.NewStoreUnavailableError("put", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	value, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.NewPaymentNotFoundError(id.String())
		}
		return nil, domain.NewStoreUnavailableError("get", err)
	}

	var doc paymentDocument
	if err := json.Unmarshal(value, &doc); err != nil {
		s.logger.Error("stored payment is not valid json", "payment_id", id, "error", err)
		return nil, domain.NewStoreUnavailableError("get", err)
	}

	return &domain.Payment{
		ID:                 doc.ID,
		Status:             domain.PaymentStatus(doc.Status),
		CardNumberLastFour: doc.CardNumberLastFour,
		ExpiryMonth:        doc.ExpiryMonth,
		ExpiryYear:         doc.ExpiryYear,
		Currency:           doc.Currency,
		Amount:             doc.Amount,
		CreatedAt:          doc.CreatedAt.UTC(),
	}, nil
}

func (s *Store) Close() error {
	s.logger.Info("closing redis client")
	return s.client.Close()
}
