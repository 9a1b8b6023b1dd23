package events

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/archbell/picoframework"
)

// subscriberMailbox is the per-subscriber buffer size. A slow subscriber
// drops its own events rather than stalling the dispatcher or other
// subscribers, mirroring the original's per-listener queue.
const subscriberMailbox = 16

// Subscription is a live registration returned by Manager.Subscribe. Read
// Events from C until Unsubscribe closes it.
type Subscription struct {
	ID     string
	mask   Kind
	target string
	C      <-chan Event
	ch     chan Event
}

// Manager is PicoFramework's EventManager: a single bounded queue feeding
// a dispatcher goroutine that fans events out to subscribers whose mask
// matches the event's Kind (and whose id matches a directed event's
// Target, if set). Grounded on modules/eventbus/memory.go's
// mutex-guarded-subscriber-map-plus-per-subscriber-channel shape, adapted
// from eventbus's string-topic routing to the original's Kind bitmask
// routing and Dropped-on-full-queue backpressure contract.
type Manager struct {
	mu      sync.RWMutex
	subs    map[string]*Subscription
	queue   chan Event
	logger  pico.Logger
	arena   *Arena
	dropped uint64
	done    chan struct{}
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewManager creates a Manager with a queue of the given length (spec.md
// §6's EVENT_QUEUE_LENGTH). logger may be nil.
func NewManager(queueLength int, logger pico.Logger) *Manager {
	if queueLength <= 0 {
		queueLength = 1
	}
	return &Manager{
		subs:   make(map[string]*Subscription),
		queue:  make(chan Event, queueLength),
		logger: logger,
		arena:  NewArena(),
		done:   make(chan struct{}),
	}
}

// Arena returns the manager's payload scratch arena.
func (m *Manager) Arena() *Arena { return m.arena }

// Start launches the dispatcher goroutine and returns right away, without
// waiting for it to begin; the goroutine runs until ctx is done or Stop
// is called.
func (m *Manager) Start(ctx context.Context) error {
	m.wg.Add(1)
	go m.dispatchLoop(ctx)
	return nil
}

// Stop halts the dispatcher and closes every subscriber channel.
func (m *Manager) Stop(ctx context.Context) error {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.done)
	}
	m.wg.Wait()
	m.mu.Lock()
	for id, sub := range m.subs {
		close(sub.ch)
		delete(m.subs, id)
	}
	m.mu.Unlock()
	return nil
}

// Subscribe registers a subscriber under id, wanting events whose Kind
// intersects mask. target, if non-empty, restricts delivery to events
// whose Target equals target (directed delivery); an empty target accepts
// both broadcast events (Target == "") and events directed at id.
func (m *Manager) Subscribe(id string, mask Kind, target string) (*Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.subs[id]; exists {
		return nil, ErrSubscriberExists
	}
	ch := make(chan Event, subscriberMailbox)
	sub := &Subscription{ID: id, mask: mask, target: target, C: ch, ch: ch}
	m.subs[id] = sub
	return sub, nil
}

// Unsubscribe removes and closes id's subscription. Idempotent.
func (m *Manager) Unsubscribe(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sub, ok := m.subs[id]; ok {
		close(sub.ch)
		delete(m.subs, id)
	}
}

// Post enqueues ev for dispatch without blocking. Safe to call from an
// ISR-equivalent context (a GPIO callback, a timer callback): it never
// waits on a mutex held across I/O and never blocks on a full queue,
// returning ErrDropped instead.
func (m *Manager) Post(ev Event) error {
	if m.stopped.Load() {
		return ErrManagerStopped
	}
	select {
	case m.queue <- ev:
		return nil
	default:
		atomic.AddUint64(&m.dropped, 1)
		if m.logger != nil {
			m.logger.Warn("event dropped, queue full", "kind", ev.Kind, "target", ev.Target)
		}
		return ErrDropped
	}
}

// Dropped returns the number of events dropped since the Manager was created.
func (m *Manager) Dropped() uint64 { return atomic.LoadUint64(&m.dropped) }

func (m *Manager) dispatchLoop(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case ev := <-m.queue:
			m.deliver(ev)
		}
	}
}

func (m *Manager) deliver(ev Event) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, sub := range m.subs {
		if sub.mask&ev.Kind == 0 {
			continue
		}
		if sub.target != "" {
			if ev.Target != sub.target {
				continue
			}
		} else if ev.Target != "" && ev.Target != id {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			if m.logger != nil {
				m.logger.Warn("subscriber mailbox full, event dropped", "subscriber", id, "kind", ev.Kind)
			}
		}
	}
}
