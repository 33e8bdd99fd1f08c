package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case event, ok := <-sub.Events():
		require.True(t, ok, "subscription closed unexpectedly")
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBroadcastToAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	first := b.Subscribe()
	second := b.Subscribe()
	defer first.Close()
	defer second.Close()

	published := []Event{
		NewEvent(EventAudit, "get_customer").WithCustomer(1),
		NewEvent(EventTicket, "create_ticket").WithTicket(7),
		NewEvent(EventHistory, "get_customer_history").WithCount(0),
	}
	for _, event := range published {
		b.Publish(event)
	}

	for _, sub := range []*Subscription{first, second} {
		for _, want := range published {
			got := receive(t, sub)
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, want.Type, got.Type)
		}
	}
}

func TestLateSubscriberSeesNoBacklog(t *testing.T) {
	b := NewBroadcaster()
	early := b.Subscribe()
	defer early.Close()

	b.Publish(NewEvent(EventAudit, "list_customers").WithCount(3))
	receive(t, early)

	late := b.Subscribe()
	defer late.Close()

	select {
	case event := <-late.Events():
		t.Fatalf("late subscriber received replayed event: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	b := NewBroadcaster()
	slow := b.Subscribe()
	defer slow.Close()

	const n = 200
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < n; i++ {
			b.Publish(NewEvent(EventAudit, "get_customer").WithCount(i))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	// The backlog drains in publish order.
	for i := 0; i < n; i++ {
		event := receive(t, slow)
		require.NotNil(t, event.Count)
		assert.Equal(t, i, *event.Count)
	}
}

func TestCloseDetachesSubscription(t *testing.T) {
	b := NewBroadcaster()
	sub := b.Subscribe()
	assert.Equal(t, 1, b.SubscriberCount())

	sub.Close()
	assert.Equal(t, 0, b.SubscriberCount())

	// Publishing after close is a no-op for this subscription; its channel
	// eventually closes.
	b.Publish(NewEvent(EventUpdate, "update_customer").WithCustomer(1))

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel did not close")
	}

	// Double close is safe.
	sub.Close()
}

func TestSubscriberDisconnectDoesNotAffectOthers(t *testing.T) {
	b := NewBroadcaster()
	leaving := b.Subscribe()
	staying := b.Subscribe()
	defer staying.Close()

	b.Publish(NewEvent(EventAudit, "get_customer").WithCustomer(1))
	receive(t, staying)
	leaving.Close()

	b.Publish(NewEvent(EventAudit, "get_customer").WithCustomer(2))
	event := receive(t, staying)
	require.NotNil(t, event.CustomerID)
	assert.Equal(t, int64(2), *event.CustomerID)
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	b := NewBroadcaster()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := b.Subscribe()
			sub.Close()
		}()
		go func() {
			defer wg.Done()
			b.Publish(NewEvent(EventAudit, "list_customers").WithCount(1))
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, b.SubscriberCount())
}
