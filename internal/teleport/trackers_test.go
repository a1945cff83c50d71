package teleport

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/scheduler"
	"github.com/pixil98/go-testutil"
)

func TestCooldownTracker(t *testing.T) {
	sched := scheduler.NewTickScheduler()
	clock := newFakeClock()
	c := NewCooldownTracker(3*time.Second, 60, clock, sched)
	id := uuid.New()

	testutil.AssertEqual(t, "idle cooling", c.IsCoolingDown(id), false)
	testutil.AssertEqual(t, "idle remaining", c.Remaining(id), time.Duration(0))

	c.Start(id)
	testutil.AssertEqual(t, "cooling", c.IsCoolingDown(id), true)

	clock.Advance(time.Second)
	testutil.AssertEqual(t, "remaining", c.Remaining(id), 2*time.Second)

	// Restarting replaces the record and its cleanup task.
	c.Start(id)
	testutil.AssertEqual(t, "pending cleanups", sched.Pending(), 1)
	testutil.AssertEqual(t, "remaining after restart", c.Remaining(id), 3*time.Second)

	clock.Advance(5 * time.Second)
	testutil.AssertEqual(t, "cooling after expiry", c.IsCoolingDown(id), false)
	testutil.AssertEqual(t, "remaining after expiry", c.Remaining(id), time.Duration(0))
}

func TestCooldownTracker_Cleanup(t *testing.T) {
	sched := scheduler.NewTickScheduler()
	c := NewCooldownTracker(time.Second, 20, newFakeClock(), sched)
	id := uuid.New()

	c.Start(id)
	tickN(t, sched, 20)

	_, ok := c.records.Load(id)
	testutil.AssertEqual(t, "record kept", ok, false)
	testutil.AssertEqual(t, "pending", sched.Pending(), 0)
}

func TestWarmupTracker(t *testing.T) {
	sched := scheduler.NewTickScheduler()
	w := NewWarmupTracker(sched, 0)
	id := uuid.New()
	first := newWarmupRecord(0)
	second := newWarmupRecord(0)

	testutil.AssertEqual(t, "start", w.Start(id, first), true)
	testutil.AssertEqual(t, "start again", w.Start(id, second), false)
	testutil.AssertEqual(t, "warming", w.IsWarming(id), true)

	testutil.AssertEqual(t, "finish stale record", w.finish(id, second), false)
	testutil.AssertEqual(t, "still warming", w.IsWarming(id), true)

	rec, ok := w.Remove(id)
	testutil.AssertEqual(t, "removed", ok, true)
	testutil.AssertEqual(t, "removed record", rec == first, true)
	testutil.AssertEqual(t, "finish after remove", w.finish(id, first), false)

	_, ok = w.Remove(id)
	testutil.AssertEqual(t, "removed twice", ok, false)
	testutil.AssertEqual(t, "suppression without window", w.SuppressionElapsed(id), true)
}

func TestWarmupRecord_Cancel(t *testing.T) {
	sched := scheduler.NewTickScheduler()
	fired := 0
	rec := newWarmupRecord(sched.CurrentTick())

	// Cancelling before handles are attached is harmless.
	rec.cancel(sched)

	action := sched.ScheduleOnce(5, func(ctx context.Context) { fired++ })
	feedback := sched.ScheduleRepeating(1, 1, func(ctx context.Context) { fired++ })
	rec.attach(action, feedback)

	a, f := rec.Handles()
	testutil.AssertEqual(t, "action handle", a, action)
	testutil.AssertEqual(t, "feedback handle", f, feedback)

	rec.cancel(sched)
	tickN(t, sched, 10)
	testutil.AssertEqual(t, "fired", fired, 0)
}

func tickN(t *testing.T, s *scheduler.TickScheduler, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := s.Tick(context.Background()); err != nil {
			t.Fatalf("unexpected tick error: %v", err)
		}
	}
}
