package teleport

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/game"
)

// Request is everything a delayed teleport needs, captured when it is scheduled.
type Request struct {
	PlayerID    uuid.UUID
	Destination game.Location
	Item        game.ItemStack
}

// delayedTeleport is the one-shot action that completes a warmup. Cancellation
// and firing race on the warmup record; whichever removes it first wins.
type delayedTeleport struct {
	c        *Coordinator
	req      Request
	rec      *WarmupRecord
	feedback *feedbackLoop
}

func (a *delayedTeleport) run(ctx context.Context) {
	a.feedback.stop()

	id := a.req.PlayerID
	p, ok := a.c.players.LookupPlayer(id)
	if !ok {
		a.c.warmups.finish(id, a.rec)
		return
	}

	if !a.claim(id) {
		return
	}

	if a.c.settings.Removal == RemoveOnSuccess {
		if _, ok := p.RemoveItem(a.c.identity.IsMarkedItem); !ok {
			a.c.notify(id, MsgCancelledNoItem, Macros{"Item": a.req.Item.Name})
			return
		}
	}

	dest := a.req.Destination
	a.c.play(id, SoundDepart)
	p.Teleport(dest)
	a.c.notify(id, MsgTeleportSuccess, Macros{"World": dest.World})
	a.c.play(id, SoundArrive)

	if a.c.settings.Lightning && a.c.effects != nil {
		if err := a.c.effects.Lightning(dest); err != nil {
			slog.WarnContext(ctx, "failed to strike lightning", "player", id, "error", err)
		}
	}

	if a.c.settings.LogUse {
		slog.InfoContext(ctx, "teleport completed",
			"player", p.Name(),
			"id", id,
			"to", dest.String(),
			"ticks", a.c.sched.CurrentTick()-a.rec.RegisteredAt)
	}
}

// claim turns Warming into Cooling for this registration. The cooldown starts
// whether or not the teleport goes ahead so a missing item still costs a cooldown.
func (a *delayedTeleport) claim(id uuid.UUID) bool {
	mu := a.c.stripe(id)
	mu.Lock()
	defer mu.Unlock()

	if !a.c.warmups.finish(id, a.rec) {
		return false
	}
	a.c.cooldowns.Start(id)
	return true
}
