package events

import "errors"

var (
	// ErrDropped is returned by Manager.Post when the event queue is full.
	// Post never blocks, so a full queue is reported rather than waited on
	// -- this is the path an ISR-context caller takes.
	ErrDropped = errors.New("events: queue full, event dropped")

	// ErrArenaMiss is returned when a Payload's arena Token has already
	// been released or was never issued by this Arena.
	ErrArenaMiss = errors.New("events: arena token not found")

	// ErrSubscriberExists is returned by Subscribe when the given
	// subscriber id is already registered.
	ErrSubscriberExists = errors.New("events: subscriber id already registered")

	// ErrManagerStopped is returned by Post once the Manager has been
	// stopped.
	ErrManagerStopped = errors.New("events: manager stopped")
)
