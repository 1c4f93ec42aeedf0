// Package events writes payment outcome events to Kafka.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/application"
	"github.com/DanielPopoola/payment-forwarding-gateway/internal/config"
	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
)

const writeTimeout = 5 * time.Second

type KafkaWriter struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaWriter(cfg config.EventsConfig, logger *slog.Logger) *KafkaWriter {
	logger.Info("kafka event writer configured",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return &KafkaWriter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: writeTimeout,
		},
		logger: logger,
	}
}

// Write sends one event keyed by payment ID, so every event for a payment
// lands on the same partition.
func (w *KafkaWriter) Write(ctx context.Context, event application.PaymentRecorded) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event for %s: %w", event.Type, event.ID, err)
	}
	return nil
}

func (w *KafkaWriter) Close() error {
	w.logger.Info("closing kafka event writer")
	return w.writer.Close()
}

func newMessage(event application.PaymentRecorded) (kafka.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s event: %w", event.Type, err)
	}

	return kafka.Message{
		Key:   []byte(event.ID.String()),
		Value: payload,
		Time:  event.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}, nil
}
