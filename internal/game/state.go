package game

import (
	"sync"

	"github.com/google/uuid"
)

// WorldState is the registry of loaded worlds and connected players.
// All access goes through its methods.
type WorldState struct {
	mu       sync.RWMutex
	players  map[uuid.UUID]*Player
	worlds   map[string]*World
	observer TeleportObserver
}

type WorldStateOpt func(*WorldState)

// WithTeleportObserver attaches obs to every player added to the state.
func WithTeleportObserver(obs TeleportObserver) WorldStateOpt {
	return func(w *WorldState) {
		w.observer = obs
	}
}

// NewWorldState creates a WorldState holding the given worlds.
func NewWorldState(worlds []*World, opts ...WorldStateOpt) *WorldState {
	w := &WorldState{
		players: make(map[uuid.UUID]*Player),
		worlds:  make(map[string]*World, len(worlds)),
	}
	for _, wd := range worlds {
		w.worlds[wd.Name] = wd
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// AddPlayer registers a connected player.
func (w *WorldState) AddPlayer(p *Player) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.players[p.ID()]; exists {
		return ErrPlayerExists
	}
	if w.observer != nil {
		p.setObserver(w.observer)
	}
	w.players[p.ID()] = p
	return nil
}

// RemovePlayer drops a player from the registry.
func (w *WorldState) RemovePlayer(id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.players[id]; !exists {
		return ErrPlayerNotFound
	}
	delete(w.players, id)
	return nil
}

// Player returns a connected player.
func (w *WorldState) Player(id uuid.UUID) (*Player, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, ok := w.players[id]
	return p, ok
}

// PlayerCount returns the number of connected players.
func (w *WorldState) PlayerCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.players)
}

// World returns the world with the given name.
func (w *WorldState) World(name string) (*World, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	wd, ok := w.worlds[name]
	return wd, ok
}

// Worlds returns every loaded world ordered by name.
func (w *WorldState) Worlds() []*World {
	w.mu.RLock()
	worlds := make([]*World, 0, len(w.worlds))
	for _, wd := range w.worlds {
		worlds = append(worlds, wd)
	}
	w.mu.RUnlock()

	SortWorlds(worlds)
	return worlds
}

// SpawnLocation returns the spawn point of the named world.
func (w *WorldState) SpawnLocation(world string) (Location, bool) {
	wd, ok := w.World(world)
	if !ok {
		return Location{}, false
	}
	return wd.SpawnLocation(), true
}
