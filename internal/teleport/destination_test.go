package teleport

import (
	"testing"

	"github.com/pixil98/go-recall/internal/game"
	"github.com/pixil98/go-testutil"
)

func world(name string, env game.Environment, x float64) *game.World {
	return &game.World{Name: name, Environment: env, Spawn: game.Spawn{X: x, Y: 64}}
}

func TestDestinationResolver_Resolve(t *testing.T) {
	standard := []*game.World{
		world("world", game.EnvironmentNormal, 1),
		world("world_nether", game.EnvironmentNether, 2),
		world("world_the_end", game.EnvironmentTheEnd, 3),
	}
	multi := []*game.World{
		world("alpha", game.EnvironmentNormal, 1),
		world("beta", game.EnvironmentNormal, 2),
		world("beta_nether", game.EnvironmentNether, 3),
		world("gamma_nether", game.EnvironmentNether, 4),
	}

	tests := map[string]struct {
		worlds     []*game.World
		fromNether bool
		fromEnd    bool
		from       string
		expWorld   string
		expX       float64
		expOk      bool
	}{
		"overworld uses own spawn": {
			worlds:     standard,
			fromNether: true,
			fromEnd:    true,
			from:       "world",
			expWorld:   "world",
			expX:       1,
			expOk:      true,
		},
		"nether routed to overworld": {
			worlds:     standard,
			fromNether: true,
			from:       "world_nether",
			expWorld:   "world",
			expX:       1,
			expOk:      true,
		},
		"nether routing disabled": {
			worlds:   standard,
			fromEnd:  true,
			from:     "world_nether",
			expWorld: "world_nether",
			expX:     2,
			expOk:    true,
		},
		"end routed to overworld": {
			worlds:   standard,
			fromEnd:  true,
			from:     "world_the_end",
			expWorld: "world",
			expX:     1,
			expOk:    true,
		},
		"end routing disabled": {
			worlds:     standard,
			fromNether: true,
			from:       "world_the_end",
			expWorld:   "world_the_end",
			expX:       3,
			expOk:      true,
		},
		"matched by name among several overworlds": {
			worlds:     multi,
			fromNether: true,
			from:       "beta_nether",
			expWorld:   "beta",
			expX:       2,
			expOk:      true,
		},
		"no matching overworld falls back": {
			worlds:     multi,
			fromNether: true,
			from:       "gamma_nether",
			expWorld:   "gamma_nether",
			expX:       4,
			expOk:      true,
		},
		"lone overworld matches any name": {
			worlds: []*game.World{
				world("main", game.EnvironmentNormal, 7),
				world("hell", game.EnvironmentNether, 8),
			},
			fromNether: true,
			from:       "hell",
			expWorld:   "main",
			expX:       7,
			expOk:      true,
		},
		"unknown world": {
			worlds: standard,
			from:   "void",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewDestinationResolver(game.NewWorldState(tt.worlds), tt.fromNether, tt.fromEnd)

			loc, ok := r.Resolve(game.Location{World: tt.from, X: 500, Y: 70, Z: 500})
			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			if !tt.expOk {
				return
			}
			testutil.AssertEqual(t, "world", loc.World, tt.expWorld)
			testutil.AssertEqual(t, "x", loc.X, tt.expX)
		})
	}
}
