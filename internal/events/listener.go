package events

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/go-recall/internal/messaging"
)

// Broker is the message bus events arrive on.
type Broker interface {
	messaging.Subscriber
	WaitReady(ctx context.Context) error
}

// Listener subscribes to every event subject and feeds the Handler.
type Listener struct {
	broker  Broker
	handler *Handler
}

func NewListener(broker Broker, handler *Handler) *Listener {
	return &Listener{
		broker:  broker,
		handler: handler,
	}
}

// Start subscribes once the broker is up and blocks until ctx is done.
func (l *Listener) Start(ctx context.Context) error {
	if err := l.broker.WaitReady(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("waiting for broker: %w", err)
	}

	unsub, err := l.broker.Subscribe(SubjectPrefix+"*", func(subject string, data []byte) {
		l.receive(ctx, subject, data)
	})
	if err != nil {
		return fmt.Errorf("subscribing to events: %w", err)
	}
	defer unsub()

	slog.InfoContext(ctx, "event listener started", "subject", SubjectPrefix+"*")

	<-ctx.Done()
	return nil
}

func (l *Listener) receive(ctx context.Context, subject string, data []byte) {
	kind := Kind(strings.TrimPrefix(subject, SubjectPrefix))
	if err := l.handler.Handle(ctx, kind, data); err != nil {
		slog.WarnContext(ctx, "dropping event", "subject", subject, "error", err)
	}
}
