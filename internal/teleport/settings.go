package teleport

import (
	"fmt"
	"time"

	"github.com/pixil98/go-recall/internal/scheduler"
)

// RemovalPolicy decides when the recall item is taken from the inventory.
type RemovalPolicy int

const (
	RemoveOnSuccess RemovalPolicy = iota
	RemoveOnUse
)

func (p RemovalPolicy) String() string {
	if p == RemoveOnUse {
		return "on-use"
	}
	return "on-success"
}

func (p *RemovalPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "on-use":
		*p = RemoveOnUse
	case "on-success", "":
		*p = RemoveOnSuccess
	default:
		return fmt.Errorf("unknown removal policy: %s", text)
	}
	return nil
}

// Settings are the read-only knobs of the teleport state machine.
type Settings struct {
	Warmup          time.Duration
	Cooldown        time.Duration
	MinimumDistance float64
	Removal         RemovalPolicy

	// Route nether / end players to the matching overworld spawn.
	FromNether bool
	FromEnd    bool

	ParticleEffects bool
	Lightning       bool
	LogUse          bool

	// Ticks during which duplicate trigger events for a new warmup are ignored.
	InteractDelay int64
	// Ticks between feedback cues while warming.
	FeedbackInterval int64

	TicksPerSecond int
}

func DefaultSettings() Settings {
	return Settings{
		Warmup:           5 * time.Second,
		Cooldown:         60 * time.Second,
		MinimumDistance:  10,
		Removal:          RemoveOnSuccess,
		FromNether:       true,
		FromEnd:          true,
		ParticleEffects:  true,
		InteractDelay:    2,
		FeedbackInterval: 5,
		TicksPerSecond:   scheduler.DefaultTicksPerSecond,
	}
}

func (s Settings) ticks(d time.Duration) int64 {
	return scheduler.Ticks(d, s.tickRate())
}

func (s Settings) tickRate() int {
	if s.TicksPerSecond <= 0 {
		return scheduler.DefaultTicksPerSecond
	}
	return s.TicksPerSecond
}

func (s Settings) feedbackInterval() int64 {
	if s.FeedbackInterval < 1 {
		return 1
	}
	return s.FeedbackInterval
}
