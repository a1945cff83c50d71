package teleport

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/scheduler"
)

// feedbackLoop plays warmup cues every few ticks while a player is warming.
// It owns no state; it stops itself once rec is no longer the player's registration.
type feedbackLoop struct {
	c      *Coordinator
	id     uuid.UUID
	rec    *WarmupRecord
	handle atomic.Uint64
}

func newFeedbackLoop(c *Coordinator, id uuid.UUID, rec *WarmupRecord) *feedbackLoop {
	return &feedbackLoop{c: c, id: id, rec: rec}
}

// start schedules the loop one tick out so it never checks state on the tick it was created.
func (f *feedbackLoop) start() scheduler.Handle {
	h := f.c.sched.ScheduleRepeating(1, f.c.settings.feedbackInterval(), f.tick)
	f.handle.Store(uint64(h))
	return h
}

func (f *feedbackLoop) stop() {
	if h := f.handle.Swap(0); h != 0 {
		f.c.sched.Cancel(scheduler.Handle(h))
	}
}

func (f *feedbackLoop) tick(ctx context.Context) {
	if !f.c.warmups.current(f.id, f.rec) {
		f.stop()
		return
	}

	p, ok := f.c.players.LookupPlayer(f.id)
	if !ok {
		f.stop()
		return
	}

	f.c.play(f.id, SoundWarmupTick)
	if f.c.settings.ParticleEffects && f.c.effects != nil {
		if err := f.c.effects.Particles(p.Location()); err != nil {
			slog.WarnContext(ctx, "failed to emit warmup particles", "player", f.id, "error", err)
		}
	}
}
