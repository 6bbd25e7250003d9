// Package unionfind implements a disjoint-set forest over dense uint32
// handles.
//
// Handles are allocated sequentially by MakeSet and index plain parent and
// rank slices, so the forest behaves like an arena: no per-node allocation,
// no hashing, contiguous memory. Only union/find semantics are exposed;
// there is no graph traversal.
//
// The forest is not safe for concurrent mutation. Find performs path
// halving, so even lookups mutate internal state; callers that share a
// forest across goroutines must serialize access.
package unionfind

// Forest is a disjoint-set forest with union by rank and path halving.
// Amortized cost per operation is near-constant (inverse Ackermann).
type Forest struct {
	parent []uint32
	rank   []uint8
	count  int
}

// New creates an empty forest.
func New() *Forest {
	return NewWithCapacity(0)
}

// NewWithCapacity creates an empty forest with room for n handles before
// the backing slices grow.
func NewWithCapacity(n int) *Forest {
	return &Forest{
		parent: make([]uint32, 0, n),
		rank:   make([]uint8, 0, n),
	}
}

// MakeSet allocates a new handle in its own singleton class.
func (f *Forest) MakeSet() uint32 {
	h := uint32(len(f.parent))
	f.parent = append(f.parent, h)
	f.rank = append(f.rank, 0)
	f.count++
	return h
}

// Find returns the canonical root of x's class, halving the path on the
// way up.
func (f *Forest) Find(x uint32) uint32 {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}
	return x
}

// Union merges the classes of a and b and returns the surviving root.
// Unioning two members of the same class is a no-op, so duplicate edges
// are absorbed.
func (f *Forest) Union(a, b uint32) uint32 {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return ra
	}
	if f.rank[ra] < f.rank[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	if f.rank[ra] == f.rank[rb] {
		f.rank[ra]++
	}
	f.count--
	return ra
}

// Len returns the number of handles allocated.
func (f *Forest) Len() int {
	return len(f.parent)
}

// Count returns the number of disjoint classes. It is maintained
// incrementally: MakeSet increments it, a merging Union decrements it.
func (f *Forest) Count() int {
	return f.count
}
