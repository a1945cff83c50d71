package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestLocation_Distance(t *testing.T) {
	tests := map[string]struct {
		a, b Location
		exp  float64
	}{
		"same point": {
			a:   Location{World: "world", X: 1, Y: 2, Z: 3},
			b:   Location{World: "world", X: 1, Y: 2, Z: 3},
			exp: 0,
		},
		"three four five": {
			a:   Location{World: "world"},
			b:   Location{World: "world", X: 3, Z: 4},
			exp: 5,
		},
		"includes height": {
			a:   Location{World: "world"},
			b:   Location{World: "world", Y: 10},
			exp: 10,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "distance", tt.a.Distance(tt.b), tt.exp)
		})
	}
}

func TestLocation_SameBlock(t *testing.T) {
	tests := map[string]struct {
		a, b Location
		exp  bool
	}{
		"rotation only": {
			a:   Location{World: "world", X: 1.2, Y: 64, Z: 1.7},
			b:   Location{World: "world", X: 1.2, Y: 64, Z: 1.7, Yaw: 90, Pitch: 10},
			exp: true,
		},
		"inside block": {
			a:   Location{World: "world", X: 1.1, Y: 64, Z: 1.1},
			b:   Location{World: "world", X: 1.9, Y: 64.5, Z: 1.9},
			exp: true,
		},
		"crossed block": {
			a:   Location{World: "world", X: 1.9, Y: 64, Z: 1},
			b:   Location{World: "world", X: 2.1, Y: 64, Z: 1},
			exp: false,
		},
		"negative coordinates floor": {
			a:   Location{World: "world", X: -0.5},
			b:   Location{World: "world", X: 0.5},
			exp: false,
		},
		"different world": {
			a:   Location{World: "world"},
			b:   Location{World: "world_nether"},
			exp: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "same block", tt.a.SameBlock(tt.b), tt.exp)
		})
	}
}
