package tracking

import (
	"context"
	"errors"
	"sync"
	"time"

	"restaurant/internal/entities"
	"restaurant/internal/service/order"
)

// ChangeFunc receives the order each time its status value differs from the
// previously observed one. Labels and other derived fields never trigger it.
type ChangeFunc func(order entities.Order)

// Watcher polls one order and reports status changes. It is the server-side
// twin of the tracking page's refresh timer: one active timer per watcher,
// stopped on terminal status or context cancellation.
type Watcher struct {
	repository OrderRepository
	interval   time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewWatcher(repository OrderRepository, interval time.Duration) *Watcher {
	return &Watcher{
		repository: repository,
		interval:   interval,
	}
}

// Start begins polling. Calling Start on a running watcher replaces the
// previous poll loop, so a watcher can never accumulate duplicate timers.
func (w *Watcher) Start(ctx context.Context, orderID string, lastSeen entities.OrderStatusType, onChange ChangeFunc) {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	w.cancel = cancel
	w.done = done
	w.mu.Unlock()

	go w.poll(ctx, done, orderID, lastSeen, onChange)
}

// Done reports when the current poll loop has finished, either because the
// order reached a terminal status or the context was cancelled.
func (w *Watcher) Done() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return w.done
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		w.cancel()
		<-w.done
		w.cancel = nil
		w.done = nil
	}
}

func (w *Watcher) poll(ctx context.Context, done chan struct{}, orderID string, lastSeen entities.OrderStatusType, onChange ChangeFunc) {
	defer close(done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		found, err := w.repository.GetByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, order.ErrOrderNotFound) {
				// the order was deleted, nothing left to watch
				return
			}
			// transient read failures are absorbed, the next tick retries
			continue
		}

		if found.Status != lastSeen {
			lastSeen = found.Status
			onChange(*found)
		}

		if found.Status.IsTerminal() {
			return
		}
	}
}
