package teleport

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/scheduler"
	"github.com/pixil98/go-recall/internal/syncmap"
)

// WarmupRecord is a pending delayed teleport. Its presence in the WarmupTracker
// is what makes a player Warming.
type WarmupRecord struct {
	RegisteredAt int64

	action   atomic.Uint64
	feedback atomic.Uint64
}

func newWarmupRecord(tick int64) *WarmupRecord {
	return &WarmupRecord{RegisteredAt: tick}
}

// Handles returns the scheduled action and feedback loop. Either is zero until attached.
func (r *WarmupRecord) Handles() (action, feedback scheduler.Handle) {
	return scheduler.Handle(r.action.Load()), scheduler.Handle(r.feedback.Load())
}

func (r *WarmupRecord) attach(action, feedback scheduler.Handle) {
	r.action.Store(uint64(action))
	r.feedback.Store(uint64(feedback))
}

func (r *WarmupRecord) cancel(sched scheduler.Scheduler) {
	action, feedback := r.Handles()
	sched.Cancel(action)
	sched.Cancel(feedback)
}

type suppression struct {
	expire scheduler.Handle
}

// WarmupTracker holds pending teleports, plus a short-lived marker per new
// registration used to ignore the duplicate trigger events one physical action
// can produce.
type WarmupTracker struct {
	sched  scheduler.Scheduler
	window int64

	records syncmap.Map[uuid.UUID, *WarmupRecord]
	recent  syncmap.Map[uuid.UUID, *suppression]
}

func NewWarmupTracker(sched scheduler.Scheduler, window int64) *WarmupTracker {
	return &WarmupTracker{
		sched:  sched,
		window: window,
	}
}

// Start registers rec for id. It refuses, returning false, when id already has a
// pending teleport; the existing record is left untouched.
func (w *WarmupTracker) Start(id uuid.UUID, rec *WarmupRecord) bool {
	if _, loaded := w.records.LoadOrStore(id, rec); loaded {
		return false
	}

	if w.window > 0 {
		s := &suppression{}
		s.expire = w.sched.ScheduleOnce(w.window, func(context.Context) {
			w.recent.CompareAndDelete(id, s)
		})
		if prev, ok := w.recent.Swap(id, s); ok {
			w.sched.Cancel(prev.expire)
		}
	}

	return true
}

// Remove deletes the pending teleport for id. Removing an absent id is a no-op.
func (w *WarmupTracker) Remove(id uuid.UUID) (*WarmupRecord, bool) {
	return w.records.LoadAndDelete(id)
}

// finish removes rec only if it is still the registration for id.
func (w *WarmupTracker) finish(id uuid.UUID, rec *WarmupRecord) bool {
	return w.records.CompareAndDelete(id, rec)
}

// current reports whether rec is still the registration for id.
func (w *WarmupTracker) current(id uuid.UUID, rec *WarmupRecord) bool {
	cur, ok := w.records.Load(id)
	return ok && cur == rec
}

func (w *WarmupTracker) IsWarming(id uuid.UUID) bool {
	return w.records.Has(id)
}

// SuppressionElapsed reports whether the duplicate-event window for id's latest
// registration has run out. It is true for players that never registered.
func (w *WarmupTracker) SuppressionElapsed(id uuid.UUID) bool {
	return !w.recent.Has(id)
}

// ActionHandle returns the scheduled action of id's pending teleport.
func (w *WarmupTracker) ActionHandle(id uuid.UUID) (scheduler.Handle, bool) {
	rec, ok := w.records.Load(id)
	if !ok {
		return 0, false
	}
	action, _ := rec.Handles()
	return action, true
}
