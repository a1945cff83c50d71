package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

type fakeBroker struct {
	mu         sync.Mutex
	subject    string
	handler    func(subject string, data []byte)
	subscribed chan struct{}
	unsubbed   bool
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{subscribed: make(chan struct{})}
}

func (b *fakeBroker) WaitReady(context.Context) error {
	return nil
}

func (b *fakeBroker) Subscribe(subject string, handler func(subject string, data []byte)) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subject = subject
	b.handler = handler
	close(b.subscribed)
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.unsubbed = true
	}, nil
}

func (b *fakeBroker) deliver(subject string, data []byte) {
	b.mu.Lock()
	handler := b.handler
	b.mu.Unlock()
	handler(subject, data)
}

func TestListener(t *testing.T) {
	coord := &fakeCoordinator{}
	h, p := newTestHandler(t, allPolicies(), coord)
	broker := newFakeBroker()
	l := NewListener(broker, h)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Start(ctx) }()

	select {
	case <-broker.subscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("listener never subscribed")
	}
	testutil.AssertEqual(t, "subject", broker.subject, "recall.events.*")

	data, _ := json.Marshal(Use{Player: p.ID(), Item: h.identity.NewStack(1)})
	broker.deliver(Subject(KindUse), data)
	// Malformed events are logged and dropped.
	broker.deliver(Subject(KindMove), []byte("not json"))

	testutil.AssertEqual(t, "initiated", coord.initiated, 1)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}
	testutil.AssertEqual(t, "unsubscribed", broker.unsubbed, true)
}
