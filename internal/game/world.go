package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-recall/internal/storage"
)

// Environment is the dimension type of a world.
type Environment int

const (
	EnvironmentNormal Environment = iota
	EnvironmentNether
	EnvironmentTheEnd
)

func (e Environment) String() string {
	switch e {
	case EnvironmentNether:
		return "nether"
	case EnvironmentTheEnd:
		return "the_end"
	default:
		return "normal"
	}
}

func (e *Environment) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "normal", "overworld":
		*e = EnvironmentNormal
	case "nether":
		*e = EnvironmentNether
	case "the_end", "end":
		*e = EnvironmentTheEnd
	default:
		return fmt.Errorf("unknown environment: %s", text)
	}
	return nil
}

func (e Environment) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Spawn is the spawn point of a world, without the world name.
type Spawn struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float32 `json:"yaw,omitempty"`
	Pitch float32 `json:"pitch,omitempty"`
}

// World is the world definition loaded from a storage asset.
// Name is taken from the asset id.
type World struct {
	Name        string      `json:"-"`
	Environment Environment `json:"environment"`
	Spawn       Spawn       `json:"spawn"`
}

// Validate satisfies storage.ValidatingSpec.
func (w *World) Validate() error {
	if w == nil {
		return fmt.Errorf("world spec is required")
	}

	el := errors.NewErrorList()

	if w.Spawn.Y < -64 || w.Spawn.Y > 320 {
		el.Add(fmt.Errorf("spawn y %.1f is outside the build height", w.Spawn.Y))
	}

	return el.Err()
}

// SpawnLocation returns the spawn point as a Location in this world.
func (w *World) SpawnLocation() Location {
	return Location{
		World: w.Name,
		X:     w.Spawn.X,
		Y:     w.Spawn.Y,
		Z:     w.Spawn.Z,
		Yaw:   w.Spawn.Yaw,
		Pitch: w.Spawn.Pitch,
	}
}

// SortWorlds orders worlds by name.
func SortWorlds(worlds []*World) {
	slices.SortFunc(worlds, func(a, b *World) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// WorldsFromStore copies every world out of a store, naming each after its asset id.
func WorldsFromStore(st storage.Storer[*World]) []*World {
	var worlds []*World
	for id, w := range st.GetAll() {
		w.Name = id.String()
		worlds = append(worlds, w)
	}
	SortWorlds(worlds)
	return worlds
}
