// Package events applies player events published by the game host to the
// recall state machine.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/game"
	"github.com/pixil98/go-recall/internal/item"
	"github.com/pixil98/go-recall/internal/teleport"
)

// Coordinator is the part of teleport.Coordinator the event layer drives.
type Coordinator interface {
	Initiate(ctx context.Context, p teleport.Player) teleport.Outcome
	Cancel(id uuid.UUID) bool
	IsWarmingUp(id uuid.UUID) bool
	SuppressionElapsed(id uuid.UUID) bool
	Notify(to uuid.UUID, id teleport.MessageID, macros teleport.Macros)
}

// Policy decides which interrupts cancel a warmup.
type Policy struct {
	CancelOnDamage      bool
	CancelOnMovement    bool
	CancelOnInteraction bool
	MaxGive             int
}

type Handler struct {
	policy   Policy
	identity *item.Identity
	state    *game.WorldState
	coord    Coordinator
}

func NewHandler(policy Policy, identity *item.Identity, state *game.WorldState, coord Coordinator) *Handler {
	return &Handler{
		policy:   policy,
		identity: identity,
		state:    state,
		coord:    coord,
	}
}

// Handle decodes data as an event of the given kind and applies it.
func (h *Handler) Handle(ctx context.Context, kind Kind, data []byte) error {
	switch kind {
	case KindJoin:
		return decodeAndApply(ctx, data, h.Join)
	case KindQuit:
		return decodeAndApply(ctx, data, h.Quit)
	case KindMove:
		return decodeAndApply(ctx, data, h.Move)
	case KindDamage:
		return decodeAndApply(ctx, data, h.Damage)
	case KindInteract:
		return decodeAndApply(ctx, data, h.Interact)
	case KindUse:
		return decodeAndApply(ctx, data, h.Use)
	case KindGive:
		return decodeAndApply(ctx, data, h.Give)
	case KindDrop:
		return decodeAndApply(ctx, data, h.Drop)
	default:
		return fmt.Errorf("unknown event kind %q", kind)
	}
}

func decodeAndApply[E any](ctx context.Context, data []byte, apply func(context.Context, E) error) error {
	var ev E
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("decoding event: %w", err)
	}
	return apply(ctx, ev)
}

func (h *Handler) Join(ctx context.Context, ev Join) error {
	p := game.NewPlayer(ev.Player, ev.Name, ev.Location)
	for _, s := range ev.Inventory {
		p.Inventory().Add(s)
	}
	if err := h.state.AddPlayer(p); err != nil {
		return fmt.Errorf("joining %s: %w", ev.Player, err)
	}
	slog.InfoContext(ctx, "player joined", "player", ev.Name, "id", ev.Player, "online", h.state.PlayerCount())
	return nil
}

// Quit drops any pending teleport without telling the player.
func (h *Handler) Quit(ctx context.Context, ev Quit) error {
	h.coord.Cancel(ev.Player)
	if err := h.state.RemovePlayer(ev.Player); err != nil {
		return fmt.Errorf("quitting %s: %w", ev.Player, err)
	}
	slog.InfoContext(ctx, "player quit", "id", ev.Player, "online", h.state.PlayerCount())
	return nil
}

// Move records the new position. Only a change of block cancels a warmup.
// Moves into a world that is not loaded are rejected.
func (h *Handler) Move(_ context.Context, ev Move) error {
	p, err := h.player(ev.Player)
	if err != nil {
		return err
	}

	if _, ok := h.state.World(ev.To.World); !ok {
		return fmt.Errorf("moving %s to %s: %w", ev.Player, ev.To.World, game.ErrWorldNotFound)
	}

	from := p.Location()
	p.SetLocation(ev.To)

	if !h.policy.CancelOnMovement || from.SameBlock(ev.To) {
		return nil
	}
	h.cancel(ev.Player, teleport.MsgCancelledMovement)
	return nil
}

func (h *Handler) Damage(_ context.Context, ev Damage) error {
	if _, err := h.player(ev.Player); err != nil {
		return err
	}
	if !h.policy.CancelOnDamage {
		return nil
	}
	h.cancel(ev.Player, teleport.MsgCancelledDamage)
	return nil
}

// Interact cancels only once the duplicate-event window of the warmup has passed;
// the click that started it is reported as an interaction as well.
func (h *Handler) Interact(_ context.Context, ev Interact) error {
	if _, err := h.player(ev.Player); err != nil {
		return err
	}
	if !h.policy.CancelOnInteraction || !h.coord.SuppressionElapsed(ev.Player) {
		return nil
	}
	h.cancel(ev.Player, teleport.MsgCancelledInteraction)
	return nil
}

func (h *Handler) Use(ctx context.Context, ev Use) error {
	if !h.identity.IsMarkedItem(ev.Item) {
		return nil
	}

	p, err := h.player(ev.Player)
	if err != nil {
		return err
	}

	if h.coord.IsWarmingUp(ev.Player) && !h.coord.SuppressionElapsed(ev.Player) {
		return nil
	}

	h.coord.Initiate(ctx, p)
	return nil
}

func (h *Handler) Give(_ context.Context, ev Give) error {
	p, err := h.player(ev.Player)
	if err != nil {
		return err
	}

	n := h.identity.Give(p.Inventory(), ev.Quantity, h.policy.MaxGive)
	h.coord.Notify(ev.Player, teleport.MsgItemGiven, teleport.Macros{
		"Amount": n,
		"Item":   h.identity.Name(),
	})
	return nil
}

func (h *Handler) Drop(_ context.Context, ev Drop) error {
	p, err := h.player(ev.Player)
	if err != nil {
		return err
	}
	if _, ok := p.Inventory().Take(ev.Slot); !ok {
		return fmt.Errorf("dropping slot %d for %s: slot is empty", ev.Slot, ev.Player)
	}
	return nil
}

func (h *Handler) cancel(id uuid.UUID, msg teleport.MessageID) {
	if h.coord.Cancel(id) {
		h.coord.Notify(id, msg, nil)
	}
}

func (h *Handler) player(id uuid.UUID) (*game.Player, error) {
	p, ok := h.state.Player(id)
	if !ok {
		return nil, fmt.Errorf("player %s: %w", id, game.ErrPlayerNotFound)
	}
	return p, nil
}

// Players exposes the connected players of state to the teleport coordinator.
func Players(state *game.WorldState) teleport.PlayerLookup {
	return teleport.PlayerLookupFunc(func(id uuid.UUID) (teleport.Player, bool) {
		p, ok := state.Player(id)
		if !ok {
			return nil, false
		}
		return p, true
	})
}
