package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/config"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/domain"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/infrastructure/persistence/redis"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	store, err := redis.Connect(context.Background(), config.RedisConfig{
		Addr:      server.Addr(),
		KeyPrefix: "payment",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, server
}

func samplePayment() *domain.Payment {
	return &domain.Payment{
		ID:                 uuid.New(),
		Status:             domain.StatusAuthorized,
		CardNumberLastFour: "8877",
		ExpiryMonth:        4,
		ExpiryYear:         2025,
		Currency:           "GBP",
		Amount:             100,
		CreatedAt:          time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_PutThenGet(t *testing.T) {
	ctx := context.Background()
	store, server := setupStore(t)
	payment := samplePayment()

	require.NoError(t, store.Put(ctx, payment))

	got, err := store.Get(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, payment, got)

	key := "payment:" + payment.ID.String()
	assert.True(t, server.Exists(key))
	assert.Zero(t, server.TTL(key))
}

func TestStore_GetMissing(t *testing.T) {
	store, _ := setupStore(t)

	got, err := store.Get(context.Background(), uuid.New())

	assert.Nil(t, got)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodePaymentNotFound))
}

func TestStore_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	payment := samplePayment()
	require.NoError(t, store.Put(ctx, payment))

	payment.Status = domain.StatusRejected
	require.NoError(t, store.Put(ctx, payment))

	got, err := store.Get(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)
}

func TestStore_CorruptValue(t *testing.T) {
	store, server := setupStore(t)
	id := uuid.New()
	require.NoError(t, server.Set("payment:"+id.String(), "{not json"))

	_, err := store.Get(context.Background(), id)

	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeStoreUnavailable))
}

func TestStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	store, server := setupStore(t)
	server.Close()

	err := store.Put(ctx, samplePayment())
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeStoreUnavailable))

	_, err = store.Get(ctx, uuid.New())
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeStoreUnavailable))
	assert.False(t, domain.IsNotFound(err))
}

func TestConnect_Unreachable(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := redis.Connect(context.Background(), config.RedisConfig{
		Addr:      addr,
		KeyPrefix: "payment",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Error(t, err)
}
