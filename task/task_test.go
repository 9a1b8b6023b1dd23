package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationOverwritesPendingValue(t *testing.T) {
	n := NewNotification()
	n.Notify(1)
	n.Notify(2)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, ok := n.Wait(ctx)
	require.True(t, ok)
	assert.Equal(t, uint32(2), v)
}

func TestNotificationWaitTimesOutOnCancelledContext(t *testing.T) {
	n := NewNotification()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok := n.Wait(ctx)
	assert.False(t, ok)
}

func TestMailboxTrySendFailsWhenFull(t *testing.T) {
	m := NewMailbox[int](1)
	assert.True(t, m.TrySend(1))
	assert.False(t, m.TrySend(2))
}

func TestMailboxSendReceiveRoundTrip(t *testing.T) {
	m := NewMailbox[string](2)
	ctx := context.Background()
	require.NoError(t, m.Send(ctx, "a"))
	v, err := m.Receive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}
