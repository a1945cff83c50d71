// Package syncmap provides a typed wrapper around sync.Map.
package syncmap

import "sync"

// Map is a concurrent map safe for use by multiple goroutines.
// The zero value is empty and ready to use.
type Map[K comparable, V any] struct {
	m sync.Map
}

// Load returns the value stored for key, if any.
func (m *Map[K, V]) Load(key K) (V, bool) {
	v, ok := m.m.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// Store sets the value for key.
func (m *Map[K, V]) Store(key K, val V) {
	m.m.Store(key, val)
}

// Swap stores val and returns the previous value, if any.
func (m *Map[K, V]) Swap(key K, val V) (V, bool) {
	prev, loaded := m.m.Swap(key, val)
	if !loaded {
		var zero V
		return zero, false
	}
	return prev.(V), true
}

// LoadOrStore returns the existing value for key if present. Otherwise it stores
// val and returns it. loaded is true when the value was already there.
func (m *Map[K, V]) LoadOrStore(key K, val V) (actual V, loaded bool) {
	v, loaded := m.m.LoadOrStore(key, val)
	return v.(V), loaded
}

// LoadAndDelete removes key and returns the value it held, if any.
func (m *Map[K, V]) LoadAndDelete(key K) (V, bool) {
	v, ok := m.m.LoadAndDelete(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

// CompareAndDelete removes key only if it currently holds old.
// V must be comparable at runtime.
func (m *Map[K, V]) CompareAndDelete(key K, old V) bool {
	return m.m.CompareAndDelete(key, old)
}

// Delete removes key. Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key K) {
	m.m.Delete(key)
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.m.Load(key)
	return ok
}

// Len counts the entries. It walks the whole map.
func (m *Map[K, V]) Len() int {
	n := 0
	m.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
