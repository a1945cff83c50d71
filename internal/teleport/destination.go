package teleport

import (
	"strings"

	"github.com/pixil98/go-recall/internal/game"
)

const (
	netherSuffix = "_nether"
	endSuffix    = "_the_end"
)

// DestinationResolver picks the spawn a player is sent to.
type DestinationResolver struct {
	spawns     WorldSpawnProvider
	fromNether bool
	fromEnd    bool
}

func NewDestinationResolver(spawns WorldSpawnProvider, fromNether, fromEnd bool) *DestinationResolver {
	return &DestinationResolver{
		spawns:     spawns,
		fromNether: fromNether,
		fromEnd:    fromEnd,
	}
}

// Resolve returns the spawn of the world at from, or of the matching overworld
// when from is in a routed nether or end world.
func (r *DestinationResolver) Resolve(from game.Location) (game.Location, bool) {
	worlds := r.spawns.Worlds()

	var current *game.World
	for _, w := range worlds {
		if w.Name == from.World {
			current = w
			break
		}
	}

	if current != nil && r.routed(current.Environment) {
		if ow, ok := overworldFor(current, worlds); ok {
			if loc, ok := r.spawns.SpawnLocation(ow.Name); ok {
				return loc, true
			}
		}
	}

	return r.spawns.SpawnLocation(from.World)
}

func (r *DestinationResolver) routed(env game.Environment) bool {
	switch env {
	case game.EnvironmentNether:
		return r.fromNether
	case game.EnvironmentTheEnd:
		return r.fromEnd
	default:
		return false
	}
}

// overworldFor finds the normal world belonging to a nether or end world. A lone
// overworld always matches; otherwise the name must follow the <base>_nether /
// <base>_the_end convention.
func overworldFor(w *game.World, worlds []*game.World) (*game.World, bool) {
	var normals []*game.World
	for _, c := range worlds {
		if c.Environment == game.EnvironmentNormal {
			normals = append(normals, c)
		}
	}

	if len(normals) == 1 {
		return normals[0], true
	}

	suffix := netherSuffix
	if w.Environment == game.EnvironmentTheEnd {
		suffix = endSuffix
	}
	base, ok := strings.CutSuffix(w.Name, suffix)
	if !ok {
		return nil, false
	}

	for _, c := range normals {
		if c.Name == base {
			return c, true
		}
	}
	return nil, false
}
