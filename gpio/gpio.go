// Package gpio implements PicoFramework's GPIO Event Bridge: per-pin
// listener registration and ISR-to-Event dispatch, grounded on
// original_source's GpioEventManager.h/GpioEvent.h.
package gpio

import (
	"sync"

	"github.com/google/uuid"

	"github.com/archbell/picoframework/events"
)

// Edge identifies which pin transition triggered a callback.
type Edge uint8

const (
	EdgeRising Edge = iota
	EdgeFalling
	EdgeBoth
)

// HandlingMode controls whether a fired pin delivers through a direct
// Callback, through the shared EventManager, or both, matching
// original_source's GPIO_EVENT_HANDLING config constant.
type HandlingMode uint8

const (
	HandlingNotifications HandlingMode = iota
	HandlingEvents
	HandlingBoth
)

// Callback is invoked synchronously from Fire for a matching listener.
// Callbacks run on the calling goroutine (the ISR-equivalent context) and
// must not block.
type Callback func(pin int, edge Edge)

// listener is one registered callback on one pin.
type listener struct {
	id    string
	pin   int
	edge  Edge
	fn    Callback
}

// Bridge is the GPIO Event Bridge: per-pin listener lists plus an optional
// connection to an events.Manager for HandlingEvents/HandlingBoth mode.
type Bridge struct {
	mu        sync.RWMutex
	listeners map[int][]listener
	mode      HandlingMode
	manager   *events.Manager
	kind      events.Kind
}

// NewBridge creates a Bridge. manager/kind are only used when mode is
// HandlingEvents or HandlingBoth; pass nil/0 for HandlingNotifications.
func NewBridge(mode HandlingMode, manager *events.Manager, kind events.Kind) *Bridge {
	return &Bridge{
		listeners: make(map[int][]listener),
		mode:      mode,
		manager:   manager,
		kind:      kind,
	}
}

// Register adds cb as a listener for edge transitions on pin, returning a
// handle to pass to Unregister. Uses a google/uuid token as the handle
// since Go disallows comparing func values for identity.
func (b *Bridge) Register(pin int, edge Edge, cb Callback) string {
	id := uuid.New().String()
	b.mu.Lock()
	b.listeners[pin] = append(b.listeners[pin], listener{id: id, pin: pin, edge: edge, fn: cb})
	b.mu.Unlock()
	return id
}

// Unregister removes the listener registered under id. Idempotent.
func (b *Bridge) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for pin, list := range b.listeners {
		for i, l := range list {
			if l.id == id {
				b.listeners[pin] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// UnregisterAll removes every listener on pin.
func (b *Bridge) UnregisterAll(pin int) {
	b.mu.Lock()
	delete(b.listeners, pin)
	b.mu.Unlock()
}

// Fire is called from the pin's interrupt context (or its simulated
// equivalent) when edge occurs on pin. It invokes matching Callbacks
// synchronously and, per HandlingMode, posts an events.Event to the
// attached EventManager -- non-blocking, so Fire itself never blocks.
func (b *Bridge) Fire(pin int, edge Edge) {
	b.mu.RLock()
	list := append([]listener(nil), b.listeners[pin]...)
	b.mu.RUnlock()

	if b.mode == HandlingNotifications || b.mode == HandlingBoth {
		for _, l := range list {
			if l.edge == EdgeBoth || l.edge == edge {
				l.fn(pin, edge)
			}
		}
	}

	if (b.mode == HandlingEvents || b.mode == HandlingBoth) && b.manager != nil {
		_ = b.manager.Post(events.Event{
			Kind:    b.kind,
			Payload: events.IntPayload(int64(pin)<<8 | int64(edge)),
		})
	}
}
