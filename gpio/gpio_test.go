package gpio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBridgeFireInvokesMatchingEdgeListener(t *testing.T) {
	b := NewBridge(HandlingNotifications, nil, 0)
	var got Edge = 255
	b.Register(2, EdgeRising, func(pin int, edge Edge) { got = edge })

	b.Fire(2, EdgeRising)
	assert.Equal(t, EdgeRising, got)
}

func TestBridgeFireSkipsNonMatchingEdge(t *testing.T) {
	b := NewBridge(HandlingNotifications, nil, 0)
	called := false
	b.Register(2, EdgeRising, func(pin int, edge Edge) { called = true })

	b.Fire(2, EdgeFalling)
	assert.False(t, called)
}

func TestBridgeUnregisterStopsDelivery(t *testing.T) {
	b := NewBridge(HandlingNotifications, nil, 0)
	called := false
	id := b.Register(2, EdgeBoth, func(pin int, edge Edge) { called = true })
	b.Unregister(id)

	b.Fire(2, EdgeRising)
	assert.False(t, called)
}
