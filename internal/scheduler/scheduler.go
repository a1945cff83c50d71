// Package scheduler runs delayed and repeating tasks off a tick counter.
// Nothing fires on its own: an owner (normally the driver loop) calls Tick at a
// fixed rate and every task due on that tick runs synchronously inside it.
package scheduler

import (
	"context"
	"slices"
	"sync"
	"time"
)

// DefaultTicksPerSecond is the tick rate the rest of the service assumes.
const DefaultTicksPerSecond = 20

// Handle identifies a scheduled task. The zero Handle never refers to a task.
type Handle uint64

// Task is the work run when a scheduled task fires.
type Task func(ctx context.Context)

// Scheduler schedules tasks relative to the current tick.
type Scheduler interface {
	// ScheduleOnce runs fn once, delay ticks from now. A delay below 1 runs on the next tick.
	ScheduleOnce(delay int64, fn Task) Handle
	// ScheduleRepeating runs fn delay ticks from now and then every interval ticks until cancelled.
	ScheduleRepeating(delay, interval int64, fn Task) Handle
	// Cancel stops a task that has not yet fired. Cancelling an unknown or finished handle is a no-op.
	Cancel(h Handle) bool
	// CurrentTick returns the number of ticks processed so far.
	CurrentTick() int64
}

type task struct {
	handle   Handle
	due      int64
	interval int64
	fn       Task
}

// TickScheduler is a Scheduler driven by explicit calls to Tick.
// Scheduling and cancelling are safe from any goroutine.
type TickScheduler struct {
	mu    sync.Mutex
	tick  int64
	next  Handle
	tasks map[Handle]*task
}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{
		tasks: make(map[Handle]*task),
	}
}

func (s *TickScheduler) ScheduleOnce(delay int64, fn Task) Handle {
	return s.schedule(delay, 0, fn)
}

func (s *TickScheduler) ScheduleRepeating(delay, interval int64, fn Task) Handle {
	if interval < 1 {
		interval = 1
	}
	return s.schedule(delay, interval, fn)
}

func (s *TickScheduler) schedule(delay, interval int64, fn Task) Handle {
	if fn == nil {
		return 0
	}
	if delay < 1 {
		delay = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	t := &task{
		handle:   s.next,
		due:      s.tick + delay,
		interval: interval,
		fn:       fn,
	}
	s.tasks[t.handle] = t
	return t.handle
}

func (s *TickScheduler) Cancel(h Handle) bool {
	if h == 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[h]; !ok {
		return false
	}
	delete(s.tasks, h)
	return true
}

func (s *TickScheduler) CurrentTick() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

// Pending returns the number of tasks that are still scheduled.
func (s *TickScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Tick advances the counter by one and runs every task due on the new tick in
// scheduling order. Tasks run without the lock held so they may schedule or
// cancel other tasks; a task cancelled by an earlier task in the same tick is skipped.
func (s *TickScheduler) Tick(ctx context.Context) error {
	s.mu.Lock()
	s.tick++
	now := s.tick
	var due []*task
	for _, t := range s.tasks {
		if t.due <= now {
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	slices.SortFunc(due, func(a, b *task) int {
		if a.due != b.due {
			if a.due < b.due {
				return -1
			}
			return 1
		}
		if a.handle < b.handle {
			return -1
		}
		if a.handle > b.handle {
			return 1
		}
		return 0
	})

	for _, t := range due {
		if !s.claim(t, now) {
			continue
		}
		t.fn(ctx)
	}

	return nil
}

// claim removes a one-shot task or re-arms a repeating one before it runs.
// It reports false if the task was cancelled in the meantime.
func (s *TickScheduler) claim(t *task, now int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[t.handle]; !ok {
		return false
	}
	if t.interval > 0 {
		t.due = now + t.interval
	} else {
		delete(s.tasks, t.handle)
	}
	return true
}

// Ticks converts a duration to a whole number of ticks at the given rate, rounding up.
func Ticks(d time.Duration, perSecond int) int64 {
	if d <= 0 || perSecond <= 0 {
		return 0
	}
	tick := time.Second / time.Duration(perSecond)
	return int64((d + tick - 1) / tick)
}

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
