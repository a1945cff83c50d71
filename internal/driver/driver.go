// Package driver runs the fixed-rate tick loop that every scheduled task hangs off.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-recall/internal/scheduler"
)

const (
	DefaultTickLength = time.Second / scheduler.DefaultTicksPerSecond
)

// Ticker is anything advanced once per tick.
type Ticker interface {
	Tick(context.Context) error
}

type TickDriver struct {
	tickLength time.Duration
	tickers    []Ticker
}

func NewTickDriver(tickers []Ticker, opts ...TickDriverOpt) *TickDriver {
	d := &TickDriver{
		tickLength: DefaultTickLength,
		tickers:    tickers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Start ticks until ctx is done. A ticker error stops the loop.
func (d *TickDriver) Start(ctx context.Context) error {
	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	slog.InfoContext(ctx, "tick driver started", "tick_length", d.tickLength, "tickers", len(d.tickers))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *TickDriver) Tick(ctx context.Context) error {
	for i, t := range d.tickers {
		if err := t.Tick(ctx); err != nil {
			return fmt.Errorf("ticker %d: %w", i, err)
		}
	}
	return nil
}
