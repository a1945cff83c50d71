package events

import (
	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/game"
)

// SubjectPrefix is prepended to every event kind to form its subject.
const SubjectPrefix = "recall.events."

// Kind names an event and is the last token of its subject.
type Kind string

const (
	KindJoin     Kind = "join"
	KindQuit     Kind = "quit"
	KindMove     Kind = "move"
	KindDamage   Kind = "damage"
	KindInteract Kind = "interact"
	KindUse      Kind = "use"
	KindGive     Kind = "give"
	KindDrop     Kind = "drop"
)

// Subject returns the subject events of kind k are published on.
func Subject(k Kind) string {
	return SubjectPrefix + string(k)
}

type Join struct {
	Player    uuid.UUID        `json:"player"`
	Name      string           `json:"name"`
	Location  game.Location    `json:"location"`
	Inventory []game.ItemStack `json:"inventory,omitempty"`
}

type Quit struct {
	Player uuid.UUID `json:"player"`
}

// Move reports a player's new position. Head rotation is reported as a move too.
type Move struct {
	Player uuid.UUID     `json:"player"`
	To     game.Location `json:"to"`
}

type Damage struct {
	Player uuid.UUID `json:"player"`
	Amount float64   `json:"amount"`
}

// Interact reports a block interaction that is not a use of the held item.
type Interact struct {
	Player uuid.UUID `json:"player"`
}

// Use reports the player using the item they hold. One click can produce two
// of these, one per hand.
type Use struct {
	Player uuid.UUID      `json:"player"`
	Item   game.ItemStack `json:"item"`
}

type Give struct {
	Player   uuid.UUID `json:"player"`
	Quantity int       `json:"quantity"`
}

type Drop struct {
	Player uuid.UUID `json:"player"`
	Slot   int       `json:"slot"`
}
