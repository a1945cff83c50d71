// Package item tags item stacks as recall items and recognises them again.
package item

import (
	"strings"

	"github.com/pixil98/go-recall/internal/game"
)

const (
	DefaultTagKey   = "recall"
	DefaultMaterial = "nether_star"
	DefaultName     = "Recall Star"

	tagValue = "1"
)

// Identity creates and recognises marked recall items.
type Identity struct {
	tagKey   string
	material string
	name     string
}

type IdentityOpt func(*Identity)

// WithTagKey sets the tag that marks a stack as a recall item.
func WithTagKey(key string) IdentityOpt {
	return func(i *Identity) {
		if key != "" {
			i.tagKey = key
		}
	}
}

// WithMaterial sets the material of created items.
func WithMaterial(material string) IdentityOpt {
	return func(i *Identity) {
		if material != "" {
			i.material = strings.ToLower(material)
		}
	}
}

// WithName sets the display name of created items.
func WithName(name string) IdentityOpt {
	return func(i *Identity) {
		if name != "" {
			i.name = name
		}
	}
}

func NewIdentity(opts ...IdentityOpt) *Identity {
	i := &Identity{
		tagKey:   DefaultTagKey,
		material: DefaultMaterial,
		name:     DefaultName,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// IsMarkedItem reports whether s is a recall item. The tag decides; a plain stack
// of the same material is not a recall item.
func (i *Identity) IsMarkedItem(s game.ItemStack) bool {
	return s.Amount > 0 && s.Tag(i.tagKey) == tagValue
}

// NewStack creates a marked stack of the given size.
func (i *Identity) NewStack(amount int) game.ItemStack {
	return game.ItemStack{
		Material: i.material,
		Name:     i.name,
		Amount:   amount,
		Tags:     map[string]string{i.tagKey: tagValue},
	}
}

// Name returns the display name given to created items.
func (i *Identity) Name() string {
	return i.name
}
