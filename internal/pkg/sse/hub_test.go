package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_SubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	assert.Equal(t, 1, hub.SubscriberCount("user-1"))

	hub.Publish("user-1", Event{UserID: "user-1", Event: "notification", Data: "hello"})

	select {
	case ev := <-ch:
		assert.Equal(t, "notification", ev.Event)
		assert.Equal(t, "hello", ev.Data)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHub_PublishToOtherUserNotDelivered(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-2", Event{UserID: "user-2", Event: "notification"})

	select {
	case <-ch:
		t.Fatal("event for user-2 must not reach user-1")
	default:
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("user-1")
	_, cleanup2 := hub.Subscribe("user-1")
	require.Equal(t, 2, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup2()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	// Channel buffer is 10; publishing past that must not deadlock.
	for i := 0; i < 25; i++ {
		hub.Publish("user-1", Event{UserID: "user-1", Event: "notification", Data: i})
	}

	assert.Equal(t, 10, len(ch))
}
