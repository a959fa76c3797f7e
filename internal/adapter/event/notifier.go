package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MikeRez0/ypbookstore/internal/adapter/config"
	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	queueSize   = 64
	maxAttempts = 3
	retryDelay  = 3 * time.Second
)

type publisher interface {
	Publish(subject string, data []byte) error
}

type envelope struct {
	event   domain.PaymentEvent
	attempt int
}

// Notifier publishes payment events to NATS from a pool of workers.
type Notifier struct {
	logger     *zap.Logger
	conn       *nats.Conn
	pub        publisher
	subject    string
	queue      chan envelope
	retryDelay time.Duration
}

func NewNotifier(cfg *config.Events, log *zap.Logger) (*Notifier, error) {
	conn, err := nats.Connect(cfg.NatsURL,
		nats.Name("bookstore-payments"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	n := newNotifier(conn, cfg.Subject, log)
	n.conn = conn
	return n, nil
}

func newNotifier(pub publisher, subject string, log *zap.Logger) *Notifier {
	return &Notifier{
		logger:     log,
		pub:        pub,
		subject:    subject,
		queue:      make(chan envelope, queueSize),
		retryDelay: retryDelay,
	}
}

// SchedulePaymentEvent queues an event without blocking the caller.
func (n *Notifier) SchedulePaymentEvent(event domain.PaymentEvent) {
	n.enqueue(envelope{event: event, attempt: 1})
}

func (n *Notifier) enqueue(e envelope) {
	select {
	case n.queue <- e:
	default:
		n.logger.Error("payment event queue is full, event dropped",
			zap.String("reference", string(e.event.Reference)))
	}
}

// Start runs workers until ctx is done.
func (n *Notifier) Start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case e := <-n.queue:
					n.process(ctx, e)
				case <-ctx.Done():
					n.logger.Debug("Finished worker")
					return
				}
			}
		}()
	}
}

func (n *Notifier) process(ctx context.Context, e envelope) {
	ref := string(e.event.Reference)
	data, err := json.Marshal(e.event)
	if err != nil {
		n.logger.Error("payment event encode error", zap.String("reference", ref), zap.Error(err))
		return
	}

	err = n.pub.Publish(n.subject, data)
	if err == nil {
		n.logger.Debug("payment event published",
			zap.String("reference", ref), zap.Int("attempt", e.attempt))
		return
	}

	if e.attempt >= maxAttempts {
		n.logger.Error("payment event publish failed, giving up",
			zap.String("reference", ref), zap.Error(err))
		return
	}
	n.logger.Warn("payment event publish failed, will retry",
		zap.String("reference", ref), zap.Int("attempt", e.attempt), zap.Error(err))

	e.attempt++
	go n.retry(ctx, e)
}

func (n *Notifier) retry(ctx context.Context, e envelope) {
	r := time.NewTimer(n.retryDelay)
	defer r.Stop()

	select {
	case <-r.C:
		n.enqueue(e)
	case <-ctx.Done():
	}
}

// Close flushes pending messages and closes the connection.
func (n *Notifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Drain()
}

// NopPublisher is used when no NATS server is configured.
type NopPublisher struct {
	Logger *zap.Logger
}

func (p NopPublisher) SchedulePaymentEvent(event domain.PaymentEvent) {
	p.Logger.Debug("payment event not published",
		zap.String("reference", string(event.Reference)),
		zap.String("status", string(event.Status)))
}
