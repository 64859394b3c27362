package services

import (
	"context"
	"log"
	"sync"
	"time"

	"backend/entity"
)

// Clock is the tracker's scheduling seam; tests swap in a fake to drive the
// simulation deterministically instead of sleeping.
type Clock interface {
	AfterFunc(d time.Duration, f func()) StopTimer
}

type StopTimer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) StopTimer {
	return time.AfterFunc(d, f)
}

func NewRealClock() Clock { return realClock{} }

// StatusUpdateFunc receives every transition the tracker performs.
type StatusUpdateFunc func(orderID uint, status string, progress float64)

// Tracker simulates the kitchen/courier side: while at least one watcher is
// subscribed to an order, it advances the order one status per interval until
// "delivered". The timer is never rescheduled past the terminal status, and
// is stopped when the last watcher leaves, so an abandoned tracking view
// cannot keep advancing state.
type Tracker struct {
	mu       sync.Mutex
	svc      *OrderService
	clock    Clock
	interval time.Duration
	onUpdate StatusUpdateFunc

	timers   map[uint]StopTimer
	watchers map[uint]int
}

func NewTracker(svc *OrderService, interval time.Duration, clock Clock, onUpdate StatusUpdateFunc) *Tracker {
	return &Tracker{
		svc:      svc,
		clock:    clock,
		interval: interval,
		onUpdate: onUpdate,
		timers:   make(map[uint]StopTimer),
		watchers: make(map[uint]int),
	}
}

// Watch subscribes to an order and starts the simulation if it is not already
// running. An unknown id never starts anything: the caller gets
// ErrOrderNotFound and there is no timer to leak.
func (t *Tracker) Watch(ctx context.Context, orderID uint) (*entity.Order, error) {
	o, err := t.svc.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.watchers[orderID]++
	if _, running := t.timers[orderID]; !running && !IsTerminalStatus(o.OrderStatus.StatusName) {
		t.schedule(orderID)
	}
	return o, nil
}

// Unwatch drops one subscription; the last one out stops the timer.
func (t *Tracker) Unwatch(orderID uint) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.watchers[orderID] == 0 {
		return
	}
	t.watchers[orderID]--
	if t.watchers[orderID] == 0 {
		delete(t.watchers, orderID)
		if timer, ok := t.timers[orderID]; ok {
			timer.Stop()
			delete(t.timers, orderID)
		}
	}
}

// Watching reports whether a timer is live for the order.
func (t *Tracker) Watching(orderID uint) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.timers[orderID]
	return ok
}

// schedule assumes t.mu is held.
func (t *Tracker) schedule(orderID uint) {
	t.timers[orderID] = t.clock.AfterFunc(t.interval, func() {
		t.advance(orderID)
	})
}

func (t *Tracker) advance(orderID uint) {
	status, err := t.svc.Advance(orderID)
	if err != nil {
		log.Printf("tracker: advance order %d: %v", orderID, err)
	} else if t.onUpdate != nil {
		t.onUpdate(orderID, status, StatusProgress(status))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.timers, orderID)
	if err == nil && !IsTerminalStatus(status) && t.watchers[orderID] > 0 {
		t.schedule(orderID)
	}
}
