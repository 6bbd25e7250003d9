// Package trackset provides a sorted set of track ids backed by a Roaring
// bitmap.
//
// Sortedness is the contract, not an incident: iteration always yields ids
// in ascending order, which is what the fast-path query functions in
// tracksutil rely on for linear merge intersection. Callers cannot hand an
// unsorted sequence to those functions because this type is the only
// accepted index entry.
package trackset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/sfmkit/trackgo/model"
)

// Set is a sorted set of track ids. It wraps a 32-bit Roaring bitmap.
type Set struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// FromSlice creates a set holding the given ids.
func FromSlice(ids []model.TrackID) *Set {
	s := New()
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}
	return s
}

// Add adds a track id to the set.
func (s *Set) Add(id model.TrackID) {
	s.rb.Add(uint32(id))
}

// Remove removes a track id from the set.
func (s *Set) Remove(id model.TrackID) {
	s.rb.Remove(uint32(id))
}

// Contains checks if a track id is in the set.
func (s *Set) Contains(id model.TrackID) bool {
	return s.rb.Contains(uint32(id))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of ids in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// And intersects the set in place with other.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// Or unions the set in place with other.
func (s *Set) Or(other *Set) {
	s.rb.Or(other.rb)
}

// Iterator returns an iterator over the set in ascending id order.
func (s *Set) Iterator() iter.Seq[model.TrackID] {
	return func(yield func(model.TrackID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(model.TrackID(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the ids in ascending order.
func (s *Set) ToSlice() []model.TrackID {
	out := make([]model.TrackID, 0, s.rb.GetCardinality())
	it := s.rb.Iterator()
	for it.HasNext() {
		out = append(out, model.TrackID(it.Next()))
	}
	return out
}

// Intersect returns the intersection of all given sets as a fresh set.
// Intersecting no sets yields the empty set.
func Intersect(sets ...*Set) *Set {
	if len(sets) == 0 {
		return New()
	}
	out := sets[0].Clone()
	for _, s := range sets[1:] {
		out.And(s)
		if out.IsEmpty() {
			break
		}
	}
	return out
}
