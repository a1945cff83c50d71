package teleport

import (
	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/game"
)

// MessageID names an entry in the message catalog.
type MessageID string

const (
	MsgCooldown        MessageID = "cooldown"
	MsgAlreadyPending  MessageID = "already-pending"
	MsgNoDestination   MessageID = "no-destination"
	MsgTooClose        MessageID = "too-close"
	MsgNoItem          MessageID = "no-item"
	MsgWarmupStarted   MessageID = "warmup-started"
	MsgCancelledNoItem MessageID = "cancelled-no-item"
	MsgTeleportSuccess MessageID = "teleport-success"

	// Sent by the event layer when an interrupt cancels a warmup.
	MsgCancelledMovement    MessageID = "cancelled-movement"
	MsgCancelledDamage      MessageID = "cancelled-damage"
	MsgCancelledInteraction MessageID = "cancelled-interaction"
	MsgItemGiven            MessageID = "item-given"
)

// SoundID names a sound cue.
type SoundID string

const (
	SoundWarmupStart SoundID = "warmup-start"
	SoundWarmupTick  SoundID = "warmup-tick"
	SoundDepart      SoundID = "teleport-depart"
	SoundArrive      SoundID = "teleport-arrive"
)

// Macros are the values substituted into a message.
type Macros map[string]any

// Message is a composed notification ready for delivery.
type Message interface {
	Send() error
}

type MessageComposer interface {
	Compose(to uuid.UUID, id MessageID, macros Macros) Message
}

type SoundPlayer interface {
	Play(to uuid.UUID, id SoundID) error
}

// WorldEffects renders visual effects that everyone near a location can see.
type WorldEffects interface {
	Particles(at game.Location) error
	Lightning(at game.Location) error
}

type ItemIdentity interface {
	IsMarkedItem(game.ItemStack) bool
}

type WorldSpawnProvider interface {
	SpawnLocation(world string) (game.Location, bool)
	Worlds() []*game.World
}

// Player is the live handle of a connected player. Handles are looked up again
// by id whenever a scheduled task runs; they are never kept across ticks.
type Player interface {
	ID() uuid.UUID
	Name() string
	Location() game.Location
	Teleport(to game.Location)
	FindItem(match func(game.ItemStack) bool) (game.ItemStack, bool)
	RemoveItem(match func(game.ItemStack) bool) (game.ItemStack, bool)
}

type PlayerLookup interface {
	LookupPlayer(id uuid.UUID) (Player, bool)
}

// PlayerLookupFunc adapts a function to PlayerLookup.
type PlayerLookupFunc func(id uuid.UUID) (Player, bool)

func (f PlayerLookupFunc) LookupPlayer(id uuid.UUID) (Player, bool) {
	return f(id)
}
