package postgres

import (
	"context"
	"errors"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/application"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db *DB
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

var _ application.PaymentStore = (*PaymentRepository)(nil)

func (r *PaymentRepository) Put(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id, status, card_number_last_four, expiry_month, expiry_year,
			currency, amount, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			card_number_last_four = EXCLUDED.card_number_last_four,
			expiry_month = EXCLUDED.expiry_month,
			expiry_year = EXCLUDED.expiry_year,
			currency = EXCLUDED.currency,
			amount = EXCLUDED.amount,
			created_at = EXCLUDED.created_at
	`

	p := toDBModel(payment)
	_, err := r.db.Pool.Exec(ctx, query,
		p.ID,
		p.Status,
		p.CardNumberLastFour,
		p.ExpiryMonth,
		p.ExpiryYear,
		p.Currency,
		p.Amount,
		p.CreatedAt,
	)
	if err != nil {
		return domain.NewStoreUnavailableError("put", err)
	}

	return nil
}

func (r *PaymentRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `
		SELECT id, status, card_number_last_four, expiry_month, expiry_year,
		       currency, amount, created_at
		FROM payments WHERE id = $1
	`

	var m PaymentModel
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.Status,
		&m.CardNumberLastFour,
		&m.ExpiryMonth,
		&m.ExpiryYear,
		&m.Currency,
		&m.Amount,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewPaymentNotFoundError(id.String())
		}
		return nil, domain.NewStoreUnavailableError("get", err)
	}

	return toDomainModel(m), nil
}
