package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
)

const (
	DefaultQueueSize = 100
	deliveryTimeout  = 5 * time.Second
)

// Sink is one delivery channel for notifications.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, n domain.Notification) error
}

// Dispatcher fans notifications out to every sink from a single background
// worker. Notify never blocks: when the queue is full the notification is
// dropped.
type Dispatcher struct {
	sinks []Sink
	log   *slog.Logger
	queue chan domain.Notification

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(log *slog.Logger, queueSize int, sinks ...Sink) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	d := &Dispatcher{
		sinks: sinks,
		log:   log,
		queue: make(chan domain.Notification, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for n := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
			if err := s.Deliver(ctx, n); err != nil {
				d.log.Error("notification delivery failed",
					"sink", s.Name(),
					"recipient_kind", string(n.Recipient.Kind),
					"recipient_id", n.Recipient.ID,
					"err", err,
				)
			}
			cancel()
		}
	}
}

func (d *Dispatcher) Notify(_ context.Context, n domain.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("notification dispatcher closed, dropping notification",
			"recipient_kind", string(n.Recipient.Kind),
			"recipient_id", n.Recipient.ID,
		)
		return
	}

	select {
	case d.queue <- n:
	default:
		// fila cheia, nunca bloquear a requisição
		d.log.Warn("notification queue full, dropping notification",
			"recipient_kind", string(n.Recipient.Kind),
			"recipient_id", n.Recipient.ID,
		)
	}
}

// Close stops accepting notifications and waits until the queued ones are
// delivered or ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ domain.Notifier = (*Dispatcher)(nil)
