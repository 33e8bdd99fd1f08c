package events

import "sync"

// Broadcaster fans published events out to every active subscription. Every
// subscriber receives every event published after it subscribed, in publish
// order; there is no replay of earlier events and no persistence.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[*Subscription]struct{})}
}

// Publish delivers the event to all current subscriptions. It never blocks on
// a slow subscriber: each subscription buffers pending events until its pump
// drains them. The backlog is unbounded; Close releases it.
func (b *Broadcaster) Publish(event Event) {
	b.mu.Lock()
	subs := make([]*Subscription, 0, len(b.subs))
	for sub := range b.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		sub.enqueue(event)
	}
}

// Subscribe registers a new subscription that observes all events published
// from this moment on. The caller must Close it when done.
func (b *Broadcaster) Subscribe() *Subscription {
	sub := &Subscription{
		broadcaster: b,
		out:         make(chan Event),
		done:        make(chan struct{}),
	}
	sub.cond = sync.NewCond(&sub.mu)

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go sub.pump()
	return sub
}

// SubscriberCount returns the number of active subscriptions.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Broadcaster) remove(sub *Subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	b.mu.Unlock()
}

// Subscription is one receiver attached to a Broadcaster.
type Subscription struct {
	broadcaster *Broadcaster
	out         chan Event
	done        chan struct{}

	mu      sync.Mutex
	cond    *sync.Cond
	pending []Event
	closed  bool

	closeOnce sync.Once
}

// Events returns the channel on which this subscription's events arrive. The
// channel is closed after Close.
func (s *Subscription) Events() <-chan Event {
	return s.out
}

// Close detaches the subscription from the broadcaster and releases its
// queue. Events still pending are discarded. Safe to call more than once and
// concurrently with Publish.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.broadcaster.remove(s)
		s.mu.Lock()
		s.closed = true
		s.pending = nil
		s.cond.Signal()
		s.mu.Unlock()
		close(s.done)
	})
}

func (s *Subscription) enqueue(event Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.pending = append(s.pending, event)
	s.cond.Signal()
	s.mu.Unlock()
}

// pump moves events from the pending queue to the out channel in FIFO order.
// It is the only goroutine writing to out, so close is safe here.
func (s *Subscription) pump() {
	for {
		s.mu.Lock()
		for len(s.pending) == 0 && !s.closed {
			s.cond.Wait()
		}
		if s.closed {
			s.mu.Unlock()
			close(s.out)
			return
		}
		event := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		select {
		case s.out <- event:
		case <-s.done:
			close(s.out)
			return
		}
	}
}
