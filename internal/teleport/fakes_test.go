package teleport

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/game"
	"github.com/pixil98/go-recall/internal/item"
	"github.com/pixil98/go-recall/internal/scheduler"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type sentMessage struct {
	to     uuid.UUID
	id     MessageID
	macros Macros
}

type recordingMessages struct {
	mu   sync.Mutex
	sent []sentMessage
}

type recordedMessage struct {
	r   *recordingMessages
	msg sentMessage
}

func (m recordedMessage) Send() error {
	m.r.mu.Lock()
	defer m.r.mu.Unlock()
	m.r.sent = append(m.r.sent, m.msg)
	return nil
}

func (r *recordingMessages) Compose(to uuid.UUID, id MessageID, macros Macros) Message {
	return recordedMessage{r: r, msg: sentMessage{to: to, id: id, macros: macros}}
}

func (r *recordingMessages) count(id MessageID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.sent {
		if m.id == id {
			n++
		}
	}
	return n
}

func (r *recordingMessages) last(id MessageID) (sentMessage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.sent) - 1; i >= 0; i-- {
		if r.sent[i].id == id {
			return r.sent[i], true
		}
	}
	return sentMessage{}, false
}

type recordingSounds struct {
	mu     sync.Mutex
	played []SoundID
}

func (r *recordingSounds) Play(_ uuid.UUID, id SoundID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, id)
	return nil
}

func (r *recordingSounds) count(id SoundID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.played {
		if s == id {
			n++
		}
	}
	return n
}

type recordingEffects struct {
	mu        sync.Mutex
	particles []game.Location
	lightning []game.Location
}

func (r *recordingEffects) Particles(at game.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.particles = append(r.particles, at)
	return nil
}

func (r *recordingEffects) Lightning(at game.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lightning = append(r.lightning, at)
	return nil
}

var (
	spawn    = game.Location{World: "world", X: 0, Y: 64, Z: 0}
	farAway  = game.Location{World: "world", X: 100, Y: 64, Z: 100}
	testTick = time.Second / scheduler.DefaultTicksPerSecond
)

func testSettings() Settings {
	s := DefaultSettings()
	s.Lightning = true
	s.LogUse = true
	return s
}

// harness wires a Coordinator to a manually ticked scheduler, a fake clock that
// advances one tick length per tick and recording outputs.
type harness struct {
	t        *testing.T
	sched    *scheduler.TickScheduler
	clock    *fakeClock
	state    *game.WorldState
	identity *item.Identity
	messages *recordingMessages
	sounds   *recordingSounds
	effects  *recordingEffects
	coord    *Coordinator
}

func newHarness(t *testing.T, settings Settings, worlds ...*game.World) *harness {
	t.Helper()

	if len(worlds) == 0 {
		worlds = []*game.World{
			{Name: "world", Spawn: game.Spawn{X: spawn.X, Y: spawn.Y, Z: spawn.Z}},
		}
	}

	h := &harness{
		t:        t,
		sched:    scheduler.NewTickScheduler(),
		clock:    newFakeClock(),
		state:    game.NewWorldState(worlds),
		identity: item.NewIdentity(),
		messages: &recordingMessages{},
		sounds:   &recordingSounds{},
		effects:  &recordingEffects{},
	}

	h.useScheduler(settings, h.sched)

	return h
}

// useScheduler rebuilds the coordinator on top of sched. The harness keeps
// ticking its own TickScheduler, so sched should wrap it.
func (h *harness) useScheduler(settings Settings, sched scheduler.Scheduler) {
	h.coord = NewCoordinator(settings, Deps{
		Scheduler: sched,
		Clock:     h.clock,
		Players:   PlayerLookupFunc(h.lookup),
		Spawns:    h.state,
		Identity:  h.identity,
		Messages:  h.messages,
		Sounds:    h.sounds,
		Effects:   h.effects,
	})
}

// hookScheduler runs onSchedule once, right before the first one-shot task with
// the given delay is scheduled. Only safe from a single goroutine.
type hookScheduler struct {
	*scheduler.TickScheduler
	delay      int64
	onSchedule func()
}

func (s *hookScheduler) ScheduleOnce(delay int64, fn scheduler.Task) scheduler.Handle {
	if hook := s.onSchedule; hook != nil && delay == s.delay {
		s.onSchedule = nil
		hook()
	}
	return s.TickScheduler.ScheduleOnce(delay, fn)
}

func (h *harness) lookup(id uuid.UUID) (Player, bool) {
	p, ok := h.state.Player(id)
	if !ok {
		return nil, false
	}
	return p, true
}

// join adds a player at loc carrying the given number of recall items.
func (h *harness) join(loc game.Location, items int) *game.Player {
	h.t.Helper()

	p := game.NewPlayer(uuid.New(), "Steve", loc)
	if items > 0 {
		p.Inventory().Add(h.identity.NewStack(items))
	}
	if err := h.state.AddPlayer(p); err != nil {
		h.t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func (h *harness) items(p *game.Player) int {
	return p.Inventory().Count(h.identity.IsMarkedItem)
}

func (h *harness) advance(ticks int) {
	h.t.Helper()
	for i := 0; i < ticks; i++ {
		h.clock.Advance(testTick)
		if err := h.sched.Tick(context.Background()); err != nil {
			h.t.Fatalf("unexpected tick error: %v", err)
		}
	}
}
