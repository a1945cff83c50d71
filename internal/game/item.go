package game

import "maps"

// ItemStack is a quantity of one kind of item sitting in an inventory slot.
type ItemStack struct {
	Material string            `json:"material"`
	Name     string            `json:"name,omitempty"`
	Amount   int               `json:"amount"`
	Tags     map[string]string `json:"tags,omitempty"`
}

// Clone returns a copy that shares nothing with s.
func (s ItemStack) Clone() ItemStack {
	c := s
	c.Tags = maps.Clone(s.Tags)
	return c
}

// Tag returns the value of a tag, or "" when the stack does not carry it.
func (s ItemStack) Tag(key string) string {
	return s.Tags[key]
}
