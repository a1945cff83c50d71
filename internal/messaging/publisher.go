package messaging

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pixil98/go-recall/internal/display"
	"github.com/pixil98/go-recall/internal/game"
	"github.com/pixil98/go-recall/internal/teleport"
)

// PlayerSubject is the subject a player's client reads rendered text from.
func PlayerSubject(id uuid.UUID) string {
	return fmt.Sprintf("player-%s", id)
}

func playerSubject(id uuid.UUID, kind string) string {
	return fmt.Sprintf("player-%s.%s", id, kind)
}

// WorldEffectsSubject is the subject visual effects for a world are published on.
func WorldEffectsSubject(world string) string {
	return fmt.Sprintf("world-%s.effects", world)
}

// Composer renders catalog messages for delivery to individual players.
type Composer struct {
	pub     Publisher
	catalog *Catalog
	width   int
}

func NewComposer(pub Publisher, catalog *Catalog, width int) *Composer {
	return &Composer{pub: pub, catalog: catalog, width: width}
}

// Compose satisfies teleport.MessageComposer. Render failures surface from Send.
func (c *Composer) Compose(to uuid.UUID, id teleport.MessageID, macros teleport.Macros) teleport.Message {
	text, err := c.catalog.Render(id, macros)
	if err == nil {
		text = display.Wrap(display.Capitalize(text), c.width)
	}
	return &playerMessage{
		pub:     c.pub,
		subject: PlayerSubject(to),
		text:    text,
		err:     err,
	}
}

type playerMessage struct {
	pub     Publisher
	subject string
	text    string
	err     error
}

func (m *playerMessage) Send() error {
	if m.err != nil {
		return m.err
	}
	return m.pub.Publish(m.subject, []byte(m.text))
}

// SoundEvent is published when a sound should be played to a player.
type SoundEvent struct {
	Sound teleport.SoundID `json:"sound"`
}

// SoundPlayer satisfies teleport.SoundPlayer.
type SoundPlayer struct {
	pub Publisher
}

func NewSoundPlayer(pub Publisher) *SoundPlayer {
	return &SoundPlayer{pub: pub}
}

func (s *SoundPlayer) Play(to uuid.UUID, id teleport.SoundID) error {
	return publishJSON(s.pub, playerSubject(to, "sound"), SoundEvent{Sound: id})
}

type EffectKind string

const (
	EffectParticles EffectKind = "particles"
	EffectLightning EffectKind = "lightning"
)

// EffectEvent is published when a visual effect should be shown in a world.
type EffectEvent struct {
	Effect   EffectKind    `json:"effect"`
	Location game.Location `json:"location"`
}

// Effects satisfies teleport.WorldEffects.
type Effects struct {
	pub Publisher
}

func NewEffects(pub Publisher) *Effects {
	return &Effects{pub: pub}
}

func (e *Effects) Particles(at game.Location) error {
	return e.publish(EffectParticles, at)
}

func (e *Effects) Lightning(at game.Location) error {
	return e.publish(EffectLightning, at)
}

func (e *Effects) publish(kind EffectKind, at game.Location) error {
	return publishJSON(e.pub, WorldEffectsSubject(at.World), EffectEvent{Effect: kind, Location: at})
}

// TeleportEvent tells a player's client where to move them.
type TeleportEvent struct {
	From game.Location `json:"from"`
	To   game.Location `json:"to"`
}

// TeleportNotifier returns a game.TeleportObserver that publishes every
// completed teleport to the player's teleport subject.
func TeleportNotifier(pub Publisher) game.TeleportObserver {
	return func(id uuid.UUID, from, to game.Location) {
		err := publishJSON(pub, playerSubject(id, "teleport"), TeleportEvent{From: from, To: to})
		if err != nil {
			slog.Warn("failed to publish teleport", "player", id, "error", err)
		}
	}
}

func publishJSON(pub Publisher, subject string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling %s: %w", subject, err)
	}
	return pub.Publish(subject, data)
}
