package game

import "sync"

// Inventory is an ordered list of item stacks. Empty slots are dropped.
// All methods are safe for concurrent use.
type Inventory struct {
	mu    sync.Mutex
	slots []ItemStack
}

// NewInventory creates an inventory holding copies of the given stacks.
func NewInventory(stacks ...ItemStack) *Inventory {
	inv := &Inventory{}
	for _, s := range stacks {
		inv.Add(s)
	}
	return inv
}

// Add appends a stack. Stacks with no items are ignored.
func (inv *Inventory) Add(s ItemStack) {
	if s.Amount <= 0 {
		return
	}
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.slots = append(inv.slots, s.Clone())
}

// RemoveOne takes a single item from the first stack that matches.
// Returns a snapshot of the stack as it was before removal.
func (inv *Inventory) RemoveOne(match func(ItemStack) bool) (ItemStack, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	for i, s := range inv.slots {
		if !match(s) {
			continue
		}
		snapshot := s.Clone()
		inv.slots[i].Amount--
		if inv.slots[i].Amount <= 0 {
			inv.slots = append(inv.slots[:i], inv.slots[i+1:]...)
		}
		return snapshot, true
	}
	return ItemStack{}, false
}

// Find returns a copy of the first stack that matches, leaving it in place.
func (inv *Inventory) Find(match func(ItemStack) bool) (ItemStack, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	for _, s := range inv.slots {
		if match(s) {
			return s.Clone(), true
		}
	}
	return ItemStack{}, false
}

// Count returns the total number of items across all matching stacks.
func (inv *Inventory) Count(match func(ItemStack) bool) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	n := 0
	for _, s := range inv.slots {
		if match(s) {
			n += s.Amount
		}
	}
	return n
}

// Slot returns a copy of the stack at index i.
func (inv *Inventory) Slot(i int) (ItemStack, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if i < 0 || i >= len(inv.slots) {
		return ItemStack{}, false
	}
	return inv.slots[i].Clone(), true
}

// Take removes the whole stack at index i.
func (inv *Inventory) Take(i int) (ItemStack, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if i < 0 || i >= len(inv.slots) {
		return ItemStack{}, false
	}
	s := inv.slots[i]
	inv.slots = append(inv.slots[:i], inv.slots[i+1:]...)
	return s, true
}

// Len returns the number of occupied slots.
func (inv *Inventory) Len() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.slots)
}
