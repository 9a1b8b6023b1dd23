// Package task implements PicoFramework's cooperative task primitive: a
// notification word with overwrite semantics (the Go analogue of a
// FreeRTOS task's direct-to-task notification) and a bounded mailbox for
// queued messages, grounded on original_source's Event.h/EventManager.h
// notify/subscribe usage and idiomatic Go channel-based concurrency.
package task

import (
	"context"
	"sync"
)

// Notification is a single-slot, overwrite-on-send signal: sending while a
// value is already pending replaces it rather than blocking, mirroring
// FreeRTOS's xTaskNotify overwrite mode. Useful for "wake up and check
// state" signals where only the latest value matters.
type Notification struct {
	mu    sync.Mutex
	ch    chan uint32
	value uint32
	set   bool
}

// NewNotification creates an empty Notification.
func NewNotification() *Notification {
	return &Notification{ch: make(chan uint32, 1)}
}

// Notify sets value, waking one waiter. A pending, unread value is
// overwritten, not queued.
func (n *Notification) Notify(value uint32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	select {
	case <-n.ch:
	default:
	}
	n.ch <- value
	n.value = value
	n.set = true
}

// Wait blocks until a notification arrives or ctx is done, returning the
// notified value and true, or zero and false on cancellation.
func (n *Notification) Wait(ctx context.Context) (uint32, bool) {
	select {
	case v := <-n.ch:
		n.mu.Lock()
		n.set = false
		n.mu.Unlock()
		return v, true
	case <-ctx.Done():
		return 0, false
	}
}

// Mailbox is a bounded FIFO queue of messages of type T, the Go analogue
// of a FreeRTOS queue: Send blocks (respecting ctx) when full, Receive
// blocks (respecting ctx) when empty.
type Mailbox[T any] struct {
	ch chan T
}

// NewMailbox creates a Mailbox with the given capacity.
func NewMailbox[T any](capacity int) *Mailbox[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Mailbox[T]{ch: make(chan T, capacity)}
}

// Send enqueues msg, blocking if the mailbox is full, until ctx is done.
func (m *Mailbox[T]) Send(ctx context.Context, msg T) error {
	select {
	case m.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySend enqueues msg without blocking, returning false if the mailbox
// is full. This is the ISR-safe path: a GPIO callback or timer callback
// must never block.
func (m *Mailbox[T]) TrySend(msg T) bool {
	select {
	case m.ch <- msg:
		return true
	default:
		return false
	}
}

// Receive dequeues the next message, blocking until one arrives or ctx is
// done.
func (m *Mailbox[T]) Receive(ctx context.Context) (T, error) {
	var zero T
	select {
	case msg := <-m.ch:
		return msg, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Len returns the number of messages currently queued.
func (m *Mailbox[T]) Len() int { return len(m.ch) }
