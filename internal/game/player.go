package game

import (
	"sync"

	"github.com/google/uuid"
)

// TeleportObserver is told about every completed teleport.
type TeleportObserver func(id uuid.UUID, from, to Location)

// Player is a connected player. Identity never changes; location and inventory
// are guarded and may be read from any goroutine.
type Player struct {
	id   uuid.UUID
	name string

	mu        sync.RWMutex
	location  Location
	inventory *Inventory
	observer  TeleportObserver
}

// NewPlayer creates a player standing at loc with an empty inventory.
func NewPlayer(id uuid.UUID, name string, loc Location) *Player {
	return &Player{
		id:        id,
		name:      name,
		location:  loc,
		inventory: NewInventory(),
	}
}

func (p *Player) ID() uuid.UUID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Location() Location {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.location
}

// SetLocation records a move reported by the host. It does not notify observers.
func (p *Player) SetLocation(loc Location) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.location = loc
}

// Teleport moves the player and notifies the observer, if any.
func (p *Player) Teleport(to Location) {
	p.mu.Lock()
	from := p.location
	p.location = to
	obs := p.observer
	p.mu.Unlock()

	if obs != nil {
		obs(p.id, from, to)
	}
}

func (p *Player) Inventory() *Inventory {
	return p.inventory
}

// RemoveItem takes one item from the first matching inventory stack.
func (p *Player) RemoveItem(match func(ItemStack) bool) (ItemStack, bool) {
	return p.inventory.RemoveOne(match)
}

// FindItem returns a snapshot of the first matching inventory stack.
func (p *Player) FindItem(match func(ItemStack) bool) (ItemStack, bool) {
	return p.inventory.Find(match)
}

func (p *Player) setObserver(obs TeleportObserver) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observer = obs
}
