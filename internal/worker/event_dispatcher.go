package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/payment-forwarding-gateway/internal/application"
)

// EventSink delivers a single event to the broker.
type EventSink interface {
	Write(ctx context.Context, event application.PaymentRecorded) error
}

type DispatchMetrics interface {
	EventDropped()
	EventPublished(err error)
}

// EventDispatcher decouples event delivery from request handling. Publish
// only enqueues; a single Start loop drains the queue into the sink.
type EventDispatcher struct {
	sink         EventSink
	queue        chan application.PaymentRecorded
	writeTimeout time.Duration
	drainTimeout time.Duration
	metrics      DispatchMetrics
	logger       *slog.Logger
	done         chan struct{}
}

func NewEventDispatcher(
	sink EventSink,
	bufferSize int,
	metrics DispatchMetrics,
	logger *slog.Logger,
) *EventDispatcher {
	return &EventDispatcher{
		sink:         sink,
		queue:        make(chan application.PaymentRecorded, bufferSize),
		writeTimeout: 5 * time.Second,
		drainTimeout: 10 * time.Second,
		metrics:      metrics,
		logger:       logger,
		done:         make(chan struct{}),
	}
}

var _ application.EventPublisher = (*EventDispatcher)(nil)

// Publish enqueues event without blocking. When the queue is full the event
// is dropped.
func (d *EventDispatcher) Publish(event application.PaymentRecorded) {
	select {
	case d.queue <- event:
	default:
		d.metrics.EventDropped()
		d.logger.Warn("event queue full, dropping event",
			"event_type", event.Type,
			"payment_id", event.ID,
		)
	}
}

// Start runs until ctx is canceled, then flushes what is already queued and
// returns. Done is closed once Start has returned.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.logger.Info("event dispatcher started", "buffer_size", cap(d.queue))
	defer close(d.done)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("event dispatcher stopping", "pending", len(d.queue))
			d.drain()
			return
		case event := <-d.queue:
			d.deliver(context.Background(), event)
		}
	}
}

func (d *EventDispatcher) Done() <-chan struct{} {
	return d.done
}

func (d *EventDispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), d.drainTimeout)
	defer cancel()

	for {
		select {
		case event := <-d.queue:
			if ctx.Err() != nil {
				d.metrics.EventDropped()
				continue
			}
			d.deliver(ctx, event)
		default:
			return
		}
	}
}

func (d *EventDispatcher) deliver(ctx context.Context, event application.PaymentRecorded) {
	ctx, cancel := context.WithTimeout(ctx, d.writeTimeout)
	defer cancel()

	err := d.sink.Write(ctx, event)
	d.metrics.EventPublished(err)
	if err != nil {
		d.logger.Error("failed to publish event",
			"event_type", event.Type,
			"payment_id", event.ID,
			"error", err,
		)
	}
}
