package events

import (
	"sync"

	"github.com/google/uuid"
)

// ArenaToken identifies a value stored in an Arena. Tokens are
// google/uuid-derived so a released or never-issued token cannot collide
// with a live one, the property the original's raw pointer borrow lacked.
type ArenaToken string

// Arena is a scratch store for event payloads too large to inline in a
// Payload. Producers Put a value and embed the returned Token in the
// Event they post; consumers Get it back and the producer (or, for
// fire-and-forget events, the dispatcher) Releases it once delivery
// completes.
type Arena struct {
	mu      sync.Mutex
	entries map[ArenaToken]any
}

// NewArena creates an empty Arena.
func NewArena() *Arena {
	return &Arena{entries: make(map[ArenaToken]any)}
}

// Put stores value and returns a fresh token referencing it.
func (a *Arena) Put(value any) ArenaToken {
	token := ArenaToken(uuid.New().String())
	a.mu.Lock()
	a.entries[token] = value
	a.mu.Unlock()
	return token
}

// Get retrieves the value for token. ok is false for an unknown or
// already-released token.
func (a *Arena) Get(token ArenaToken) (any, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.entries[token]
	return v, ok
}

// Release frees token. Safe to call more than once.
func (a *Arena) Release(token ArenaToken) {
	a.mu.Lock()
	delete(a.entries, token)
	a.mu.Unlock()
}
