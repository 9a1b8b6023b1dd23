// Package events implements PicoFramework's EventManager: a bounded,
// non-blocking event queue with bitmask-keyed subscriptions, grounded on
// the original firmware's Event.h/EventManager.h and adapted to the
// teacher's channel-and-mutex event bus idiom (modules/eventbus/memory.go).
package events

import "time"

// Kind is a bitmask identifying an event's category. Subscribers register
// a mask of Kinds they want delivered; a Kind with more than one bit set
// lets a single Post satisfy several subscriptions at once, matching the
// original's `EventType` bitmask design.
type Kind uint32

// PayloadTag discriminates the active field of a Payload.
type PayloadTag uint8

const (
	PayloadNone PayloadTag = iota
	PayloadInt
	PayloadFloat
	PayloadString
	PayloadArena
)

// Payload is a fixed-size tagged union standing in for the original
// Event's raw (ptr, size) borrow into caller-owned memory. Anything too
// large or too structured to fit inline is stored in an Arena and
// referenced by Token; a stale Token fails closed (ErrArenaMiss) instead
// of reading memory the producer has already freed.
type Payload struct {
	Tag   PayloadTag
	Int   int64
	Float float64
	Str   string
	Token ArenaToken
}

// IntPayload builds a Payload carrying an integer.
func IntPayload(v int64) Payload { return Payload{Tag: PayloadInt, Int: v} }

// FloatPayload builds a Payload carrying a float.
func FloatPayload(v float64) Payload { return Payload{Tag: PayloadFloat, Float: v} }

// StringPayload builds a Payload carrying a short string.
func StringPayload(v string) Payload { return Payload{Tag: PayloadString, Str: v} }

// ArenaPayload builds a Payload referencing a value already Put in an Arena.
func ArenaPayload(token ArenaToken) Payload { return Payload{Tag: PayloadArena, Token: token} }

// Event is one posted occurrence: a Kind, an optional delivery Target
// (empty means broadcast to every subscriber whose mask matches), and a
// Payload.
type Event struct {
	Kind    Kind
	Target  string
	Payload Payload
	Posted  time.Time
}
