package teleport

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/scheduler"
	"github.com/pixil98/go-recall/internal/syncmap"
)

type cooldownRecord struct {
	expiry  time.Time
	cleanup scheduler.Handle
}

// CooldownTracker holds per-player cooldown expiries. Records remove themselves
// once the cooldown has elapsed.
type CooldownTracker struct {
	duration time.Duration
	ticks    int64
	clock    scheduler.Clock
	sched    scheduler.Scheduler

	records syncmap.Map[uuid.UUID, *cooldownRecord]
}

func NewCooldownTracker(duration time.Duration, ticks int64, clock scheduler.Clock, sched scheduler.Scheduler) *CooldownTracker {
	if duration < 0 {
		duration = 0
	}
	return &CooldownTracker{
		duration: duration,
		ticks:    ticks,
		clock:    clock,
		sched:    sched,
	}
}

// Start begins a fresh cooldown for id, replacing any previous one.
func (c *CooldownTracker) Start(id uuid.UUID) {
	rec := &cooldownRecord{expiry: c.clock.Now().Add(c.duration)}
	rec.cleanup = c.sched.ScheduleOnce(c.ticks, func(context.Context) {
		c.records.CompareAndDelete(id, rec)
	})

	if prev, ok := c.records.Swap(id, rec); ok {
		c.sched.Cancel(prev.cleanup)
	}
}

// Remaining returns the time left on the cooldown, never negative.
func (c *CooldownTracker) Remaining(id uuid.UUID) time.Duration {
	rec, ok := c.records.Load(id)
	if !ok {
		return 0
	}
	d := rec.expiry.Sub(c.clock.Now())
	if d < 0 {
		return 0
	}
	return d
}

func (c *CooldownTracker) IsCoolingDown(id uuid.UUID) bool {
	return c.Remaining(id) > 0
}
