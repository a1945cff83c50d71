// Package teleport runs the recall warmup / cooldown state machine.
//
// Per player, the state is read off the trackers: a WarmupRecord means Warming,
// an unexpired cooldown means Cooling, neither means Idle.
//
//	Idle --Initiate--> Warming --action fires--> Cooling --elapses--> Idle
//	Warming --Cancel--> Idle
package teleport

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/scheduler"
)

const stripeCount = 64

// Outcome reports what Initiate did.
type Outcome int

const (
	OutcomeStarted Outcome = iota
	OutcomeInvalid
	OutcomeCoolingDown
	OutcomePending
	OutcomeNoDestination
	OutcomeTooClose
	OutcomeNoItem
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStarted:
		return "started"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeCoolingDown:
		return "cooling-down"
	case OutcomePending:
		return "pending"
	case OutcomeNoDestination:
		return "no-destination"
	case OutcomeTooClose:
		return "too-close"
	case OutcomeNoItem:
		return "no-item"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Deps are the collaborators a Coordinator talks to. Effects is optional.
type Deps struct {
	Scheduler scheduler.Scheduler
	Clock     scheduler.Clock
	Players   PlayerLookup
	Spawns    WorldSpawnProvider
	Identity  ItemIdentity
	Messages  MessageComposer
	Sounds    SoundPlayer
	Effects   WorldEffects
}

// Coordinator validates recall requests, schedules the delayed teleport and
// exposes cancellation to the event layer.
type Coordinator struct {
	settings Settings

	sched    scheduler.Scheduler
	players  PlayerLookup
	identity ItemIdentity
	messages MessageComposer
	sounds   SoundPlayer
	effects  WorldEffects
	resolver *DestinationResolver

	cooldowns *CooldownTracker
	warmups   *WarmupTracker

	// Serialises each player's admission checks against their Warming to Cooling handover.
	stripes [stripeCount]sync.Mutex
}

func NewCoordinator(settings Settings, deps Deps) *Coordinator {
	clock := deps.Clock
	if clock == nil {
		clock = scheduler.SystemClock
	}

	return &Coordinator{
		settings:  settings,
		sched:     deps.Scheduler,
		players:   deps.Players,
		identity:  deps.Identity,
		messages:  deps.Messages,
		sounds:    deps.Sounds,
		effects:   deps.Effects,
		resolver:  NewDestinationResolver(deps.Spawns, settings.FromNether, settings.FromEnd),
		cooldowns: NewCooldownTracker(settings.Cooldown, settings.ticks(settings.Cooldown), clock, deps.Scheduler),
		warmups:   NewWarmupTracker(deps.Scheduler, settings.InteractDelay),
	}
}

// Initiate starts a warmup for p if policy allows it. Rejections change no state
// and are reported to the player.
func (c *Coordinator) Initiate(ctx context.Context, p Player) Outcome {
	if p == nil {
		return OutcomeInvalid
	}
	id := p.ID()

	mu := c.stripe(id)
	mu.Lock()
	req, rec, outcome := c.admit(p)
	mu.Unlock()
	if outcome != OutcomeStarted {
		return outcome
	}

	if c.settings.Removal == RemoveOnUse {
		item, ok := p.RemoveItem(c.identity.IsMarkedItem)
		if !ok {
			c.warmups.finish(id, rec)
			c.notify(id, MsgNoItem, nil)
			return OutcomeNoItem
		}
		req.Item = item
	} else if item, ok := p.FindItem(c.identity.IsMarkedItem); ok {
		req.Item = item
	}

	feedback := newFeedbackLoop(c, id, rec)
	action := &delayedTeleport{c: c, req: req, rec: rec, feedback: feedback}
	actionHandle := c.sched.ScheduleOnce(c.settings.ticks(c.settings.Warmup), action.run)
	feedbackHandle := feedback.start()
	rec.attach(actionHandle, feedbackHandle)

	// A Cancel that raced the scheduling above saw zero handles, and a newer
	// registration may already have taken its place.
	if !c.warmups.current(id, rec) {
		c.sched.Cancel(actionHandle)
		feedback.stop()
		return OutcomeCancelled
	}

	if c.settings.Warmup > 0 {
		c.notify(id, MsgWarmupStarted, Macros{
			"Seconds":     seconds(c.settings.Warmup),
			"Destination": req.Destination.World,
		})
		c.play(id, SoundWarmupStart)
	}

	if c.settings.LogUse {
		slog.InfoContext(ctx, "teleport initiated",
			"player", p.Name(),
			"id", id,
			"from", p.Location().String(),
			"to", req.Destination.String(),
			"warmup", c.settings.Warmup)
	}

	return OutcomeStarted
}

// admit runs the guard checks and registers the warmup. Called with the player's stripe held.
func (c *Coordinator) admit(p Player) (Request, *WarmupRecord, Outcome) {
	id := p.ID()

	if c.cooldowns.IsCoolingDown(id) {
		remaining := c.cooldowns.Remaining(id)
		c.notify(id, MsgCooldown, Macros{
			"Remaining": remaining,
			"Seconds":   seconds(remaining),
		})
		return Request{}, nil, OutcomeCoolingDown
	}

	if c.warmups.IsWarming(id) {
		c.notify(id, MsgAlreadyPending, nil)
		return Request{}, nil, OutcomePending
	}

	from := p.Location()
	dest, ok := c.resolver.Resolve(from)
	if !ok {
		c.notify(id, MsgNoDestination, Macros{"World": from.World})
		return Request{}, nil, OutcomeNoDestination
	}

	if from.World == dest.World && from.Distance(dest) < c.settings.MinimumDistance {
		c.notify(id, MsgTooClose, Macros{"Distance": c.settings.MinimumDistance})
		return Request{}, nil, OutcomeTooClose
	}

	rec := newWarmupRecord(c.sched.CurrentTick())
	if !c.warmups.Start(id, rec) {
		c.notify(id, MsgAlreadyPending, nil)
		return Request{}, nil, OutcomePending
	}

	return Request{PlayerID: id, Destination: dest}, rec, OutcomeStarted
}

// Cancel aborts id's pending teleport. It reports whether there was one to abort.
func (c *Coordinator) Cancel(id uuid.UUID) bool {
	rec, ok := c.warmups.Remove(id)
	if !ok {
		return false
	}
	rec.cancel(c.sched)
	return true
}

func (c *Coordinator) IsWarmingUp(id uuid.UUID) bool {
	return c.warmups.IsWarming(id)
}

// SuppressionElapsed reports whether interrupt events for id should be acted on yet.
func (c *Coordinator) SuppressionElapsed(id uuid.UUID) bool {
	return c.warmups.SuppressionElapsed(id)
}

func (c *Coordinator) IsCoolingDown(id uuid.UUID) bool {
	return c.cooldowns.IsCoolingDown(id)
}

func (c *Coordinator) CooldownRemaining(id uuid.UUID) time.Duration {
	return c.cooldowns.Remaining(id)
}

// Notify delivers a catalog message to a player, logging delivery failures.
func (c *Coordinator) Notify(to uuid.UUID, id MessageID, macros Macros) {
	c.notify(to, id, macros)
}

func (c *Coordinator) notify(to uuid.UUID, id MessageID, macros Macros) {
	if c.messages == nil {
		return
	}
	msg := c.messages.Compose(to, id, macros)
	if msg == nil {
		return
	}
	if err := msg.Send(); err != nil {
		slog.Warn("failed to send message", "player", to, "message", id, "error", err)
	}
}

func (c *Coordinator) play(to uuid.UUID, id SoundID) {
	if c.sounds == nil {
		return
	}
	if err := c.sounds.Play(to, id); err != nil {
		slog.Warn("failed to play sound", "player", to, "sound", id, "error", err)
	}
}

func (c *Coordinator) stripe(id uuid.UUID) *sync.Mutex {
	return &c.stripes[int(id[15])%stripeCount]
}

// seconds rounds up so "0 seconds left" is never shown while a cooldown is active.
func seconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
