package item

import "github.com/pixil98/go-recall/internal/game"

const DefaultMaxGive = 64

// ClampQuantity bounds a requested give quantity to [1, max].
// A max below 1 is treated as DefaultMaxGive.
func ClampQuantity(requested, max int) int {
	if max < 1 {
		max = DefaultMaxGive
	}
	if requested < 1 {
		return 1
	}
	if requested > max {
		return max
	}
	return requested
}

// Give adds a clamped number of recall items to inv and returns how many were added.
func (i *Identity) Give(inv *game.Inventory, requested, max int) int {
	n := ClampQuantity(requested, max)
	inv.Add(i.NewStack(n))
	return n
}
