// Package keymap maintains the bijection between feature keys and the dense
// node handles consumed by the union-find forest.
//
// The forward direction is a hash map, the reverse direction a plain slice
// indexed by handle. Handles are allocated sequentially starting at zero,
// mirroring the allocation order of unionfind.Forest so both structures can
// grow in lockstep.
package keymap

// Map is a bijective key-to-handle map. The zero value is not usable;
// use New.
type Map[K comparable] struct {
	handles map[K]uint32
	keys    []K
}

// New creates an empty map with room for n keys before growth.
func New[K comparable](n int) *Map[K] {
	return &Map[K]{
		handles: make(map[K]uint32, n),
		keys:    make([]K, 0, n),
	}
}

// Resolve returns the handle for key, creating a fresh one on first
// reference. created reports whether a new handle was allocated. Resolving
// an existing key always yields the handle it was first given.
func (m *Map[K]) Resolve(key K) (handle uint32, created bool) {
	if h, ok := m.handles[key]; ok {
		return h, false
	}
	h := uint32(len(m.keys))
	m.handles[key] = h
	m.keys = append(m.keys, key)
	return h, true
}

// Lookup returns the handle for key without creating one.
func (m *Map[K]) Lookup(key K) (uint32, bool) {
	h, ok := m.handles[key]
	return h, ok
}

// Key returns the key bound to handle. The handle must have been returned
// by Resolve.
func (m *Map[K]) Key(handle uint32) K {
	return m.keys[handle]
}

// Len returns the number of keys registered.
func (m *Map[K]) Len() int {
	return len(m.keys)
}
