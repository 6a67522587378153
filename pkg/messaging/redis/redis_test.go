package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroker(t *testing.T) (*miniredis.Miniredis, *RedisBroker) {
	t.Helper()
	mr := miniredis.RunT(t)

	broker, err := NewRedisBroker("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = broker.Close() })

	return mr, broker.(*RedisBroker)
}

func TestNewRedisBrokerBadURL(t *testing.T) {
	_, err := NewRedisBroker("not-a-url")
	assert.Error(t, err)
}

func TestNewRedisBrokerUnreachable(t *testing.T) {
	_, err := NewRedisBroker("redis://127.0.0.1:1")
	assert.Error(t, err)
}

func TestPublishSubscribeRoundTrip(t *testing.T) {
	_, broker := newTestBroker(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := broker.Subscribe(ctx, "vetco.events.test")
	require.NoError(t, err)

	// Give the subscriber goroutine time to attach before publishing.
	time.Sleep(50 * time.Millisecond)

	type payload struct {
		ID string `json:"id"`
	}
	require.NoError(t, broker.Publish(ctx, "vetco.events.test", payload{ID: "abc"}))

	select {
	case raw := <-msgs:
		assert.JSONEq(t, `{"id":"abc"}`, string(raw))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestSubscribeStopsOnCancel(t *testing.T) {
	_, broker := newTestBroker(t)

	ctx, cancel := context.WithCancel(context.Background())
	msgs, err := broker.Subscribe(ctx, "vetco.events.test")
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-msgs:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
