package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-recall/internal/events"
	"github.com/pixil98/go-recall/internal/item"
	"github.com/pixil98/go-recall/internal/teleport"
)

// TeleportConfig holds the recall tuning. Unset values take the built-in defaults.
type TeleportConfig struct {
	Warmup          *int                   `json:"teleport-warmup"`   // seconds
	Cooldown        *int                   `json:"teleport-cooldown"` // seconds
	MinimumDistance *float64               `json:"minimum-distance"`  // blocks
	Removal         teleport.RemovalPolicy `json:"remove-from-inventory"`

	FromNether *bool `json:"from-nether"`
	FromEnd    *bool `json:"from-end"`

	CancelOnDamage      *bool `json:"cancel-on-damage"`
	CancelOnMovement    *bool `json:"cancel-on-movement"`
	CancelOnInteraction *bool `json:"cancel-on-interaction"`

	ParticleEffects *bool `json:"particle-effects"`
	Lightning       bool  `json:"lightning"`
	LogUse          bool  `json:"log-use"`

	InteractDelay    *int64 `json:"interact-delay"`    // ticks
	FeedbackInterval *int64 `json:"feedback-interval"` // ticks
	MaxGiveQuantity  int    `json:"max-give-quantity"`
}

func (c *TeleportConfig) validate() error {
	el := errors.NewErrorList()

	if c.Warmup != nil && *c.Warmup < 0 {
		el.Add(fmt.Errorf("teleport-warmup must not be negative"))
	}
	if c.Cooldown != nil && *c.Cooldown < 0 {
		el.Add(fmt.Errorf("teleport-cooldown must not be negative"))
	}
	if c.MinimumDistance != nil && *c.MinimumDistance < 0 {
		el.Add(fmt.Errorf("minimum-distance must not be negative"))
	}
	if c.InteractDelay != nil && *c.InteractDelay < 0 {
		el.Add(fmt.Errorf("interact-delay must not be negative"))
	}
	if c.FeedbackInterval != nil && *c.FeedbackInterval < 1 {
		el.Add(fmt.Errorf("feedback-interval must be at least 1 tick"))
	}
	if c.MaxGiveQuantity < 0 {
		el.Add(fmt.Errorf("max-give-quantity must not be negative"))
	}

	return el.Err()
}

func (c *TeleportConfig) buildSettings(ticksPerSecond int) teleport.Settings {
	s := teleport.DefaultSettings()

	if c.Warmup != nil {
		s.Warmup = time.Duration(*c.Warmup) * time.Second
	}
	if c.Cooldown != nil {
		s.Cooldown = time.Duration(*c.Cooldown) * time.Second
	}
	if c.MinimumDistance != nil {
		s.MinimumDistance = *c.MinimumDistance
	}
	if c.InteractDelay != nil {
		s.InteractDelay = *c.InteractDelay
	}
	if c.FeedbackInterval != nil {
		s.FeedbackInterval = *c.FeedbackInterval
	}

	s.Removal = c.Removal
	s.FromNether = boolOr(c.FromNether, s.FromNether)
	s.FromEnd = boolOr(c.FromEnd, s.FromEnd)
	s.ParticleEffects = boolOr(c.ParticleEffects, s.ParticleEffects)
	s.Lightning = c.Lightning
	s.LogUse = c.LogUse
	s.TicksPerSecond = ticksPerSecond

	return s
}

func (c *TeleportConfig) buildPolicy() events.Policy {
	maxGive := c.MaxGiveQuantity
	if maxGive == 0 {
		maxGive = item.DefaultMaxGive
	}

	return events.Policy{
		CancelOnDamage:      boolOr(c.CancelOnDamage, true),
		CancelOnMovement:    boolOr(c.CancelOnMovement, true),
		CancelOnInteraction: boolOr(c.CancelOnInteraction, true),
		MaxGive:             maxGive,
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

type ItemConfig struct {
	Material string `json:"material"`
	Name     string `json:"name"`
}

func (c *ItemConfig) buildIdentity() *item.Identity {
	return item.NewIdentity(
		item.WithMaterial(c.Material),
		item.WithName(c.Name),
	)
}
