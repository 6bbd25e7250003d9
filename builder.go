package trackgo

import (
	"fmt"
	"io"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/sfmkit/trackgo/internal/keymap"
	"github.com/sfmkit/trackgo/internal/unionfind"
	"github.com/sfmkit/trackgo/model"
)

// Builder fuses pairwise correspondences into track candidates.
//
// Usage:
//
//	b := trackgo.NewBuilder()
//	b.Build(matches)        // efficient fusion of correspondences
//	b.Filter(true, 2, true) // remove forked and too-short classes
//	tracks := b.Tracks()    // materialize with stable ids
//
// A Builder owns its key map and union-find forest exclusively for the
// duration of build and filter; Build and Filter must not be called
// concurrently. The TracksMap returned by Tracks is an independent
// snapshot with no back-references, so the Builder may be discarded after
// export.
type Builder struct {
	keys      *keymap.Map[model.FeatureKey]
	uf        *unionfind.Forest
	discarded *roaring.Bitmap // canonical roots rejected by Filter

	edges uint64

	logger      *Logger
	parallelism int
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Builder{
		keys:        keymap.New[model.FeatureKey](o.capacityHint),
		uf:          unionfind.NewWithCapacity(o.capacityHint),
		discarded:   roaring.New(),
		logger:      o.logger,
		parallelism: o.parallelism,
	}
}

// Build fuses a series of pairwise matches into the forest.
//
// Every correspondence resolves or creates its two endpoint nodes and
// unions them. Duplicate edges are absorbed by the idempotence of union,
// and correspondences within a single view are legal input here; they
// surface later as forks for Filter to judge. The final partition depends
// only on the edge set, never on processing order.
//
// Build may be called multiple times to ingest matches incrementally; any
// filter decisions made before the new edges arrived are reset, since
// fresh unions can merge previously judged classes.
func (b *Builder) Build(matches model.PairwiseMatches) {
	if !b.discarded.IsEmpty() {
		b.discarded.Clear()
	}

	for pair, perDesc := range matches {
		for desc, ms := range perDesc {
			for _, m := range ms {
				b.AddCorrespondence(
					model.FeatureKey{View: pair.I, Desc: desc, Feat: m.I},
					model.FeatureKey{View: pair.J, Desc: desc, Feat: m.J},
				)
			}
		}
	}

	b.logger.LogBuild(b.edges, b.uf.Len(), b.uf.Count())
}

// AddCorrespondence unions the classes of two feature keys, creating
// endpoint nodes on first reference. It is the single-edge form of Build
// and accepts endpoints from different describers.
func (b *Builder) AddCorrespondence(ka, kb model.FeatureKey) {
	b.edges++
	b.uf.Union(b.handle(ka), b.handle(kb))
}

func (b *Builder) handle(key model.FeatureKey) uint32 {
	h, created := b.keys.Resolve(key)
	if created {
		// keymap and forest allocate handles in lockstep.
		b.uf.MakeSet()
	}
	return h
}

// NbTracks returns the number of live classes: the classes of the forest
// minus those rejected by Filter. The count is maintained incrementally,
// so the cost does not depend on the number of edges.
func (b *Builder) NbTracks() int {
	return b.uf.Count() - int(b.discarded.GetCardinality())
}

// classes enumerates the current partition: canonical roots in ascending
// handle order, and for each root its members, also ascending.
func (b *Builder) classes() ([]uint32, map[uint32][]uint32) {
	members := make(map[uint32][]uint32, b.uf.Count())
	for h := uint32(0); h < uint32(b.uf.Len()); h++ {
		root := b.uf.Find(h)
		members[root] = append(members[root], h)
	}

	roots := make([]uint32, 0, len(members))
	for root := range members {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i] < roots[j] })

	return roots, members
}

// Filter rejects invalid classes in one validity pass.
//
// A class is a fork when two of its observations share a view id; with
// clearForks the whole class is rejected, since nothing short of geometric
// evidence can tell which of the colliding observations is right. A class
// spanning fewer than minTrackLength distinct views is rejected as not
// triangulable; minTrackLength below 1 degenerates to keeping everything.
//
// Rejected classes are only excluded from materialization, not removed
// from the forest. With multithreaded set, the read-only evaluation runs
// on up to WithParallelism goroutines; rejections are committed in a
// sequential step afterwards.
func (b *Builder) Filter(clearForks bool, minTrackLength int, multithreaded bool) {
	before := b.NbTracks()

	roots, members := b.classes()
	reject := make([]bool, len(roots))

	evaluate := func(i int) {
		root := roots[i]
		if b.discarded.Contains(root) {
			return
		}

		seen := make(map[model.ViewID]struct{}, len(members[root]))
		fork := false
		for _, h := range members[root] {
			view := b.keys.Key(h).View
			if _, dup := seen[view]; dup {
				fork = true
			} else {
				seen[view] = struct{}{}
			}
		}

		reject[i] = (clearForks && fork) || len(seen) < minTrackLength
	}

	if multithreaded && len(roots) > 1 {
		var g errgroup.Group
		g.SetLimit(b.parallelism)

		const chunk = 256
		for lo := 0; lo < len(roots); lo += chunk {
			hi := min(lo+chunk, len(roots))
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					evaluate(i)
				}
				return nil
			})
		}
		_ = g.Wait() // evaluate never fails
	} else {
		for i := range roots {
			evaluate(i)
		}
	}

	// Commit phase: single goroutine mutates the discard set.
	for i, root := range roots {
		if reject[i] {
			b.discarded.Add(root)
		}
	}

	b.logger.LogFilter(clearForks, minTrackLength, before, b.NbTracks())
}

// Tracks materializes every surviving class into a fresh track table.
//
// Classes are enumerated in ascending canonical-root order and assigned
// sequential ids from zero, so repeated export from the same built and
// filtered state yields the same table. A class chaining observations
// from more than one describer is tagged with the describer of its
// first-created member. When fork clearing was disabled, colliding
// observations in one view collapse to the last-enumerated one.
func (b *Builder) Tracks() model.TracksMap {
	roots, members := b.classes()

	out := make(model.TracksMap, len(roots))
	var id model.TrackID
	for _, root := range roots {
		if b.discarded.Contains(root) {
			continue
		}

		ms := members[root]
		track := model.Track{
			DescType:    b.keys.Key(ms[0]).Desc,
			FeatPerView: make(map[model.ViewID]model.FeatureIndex, len(ms)),
		}
		for _, h := range ms {
			key := b.keys.Key(h)
			track.FeatPerView[key.View] = key.Feat
		}

		out[id] = track
		id++
	}

	b.logger.LogExport(len(out))

	return out
}

// WriteTo writes a human-readable dump of the surviving classes:
// one line per track, then one line per observation. The rendering is
// deterministic for a given built and filtered state.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	var written int64

	tracks := b.Tracks()

	n, err := fmt.Fprintf(w, "tracks: %d\n", len(tracks))
	written += int64(n)
	if err != nil {
		return written, err
	}

	for _, id := range tracks.TrackIDs() {
		track := tracks[id]

		n, err := fmt.Fprintf(w, "track %d desc=%s len=%d\n", id, track.DescType, track.Len())
		written += int64(n)
		if err != nil {
			return written, err
		}

		for _, view := range track.Views() {
			n, err := fmt.Fprintf(w, "\tview %d feat %d\n", view, track.FeatPerView[view])
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}

	return written, nil
}

// Stats reports the size of the builder's internal structures.
type Stats struct {
	Edges     uint64 // correspondence edges ingested (duplicates included)
	Nodes     int    // distinct feature keys
	Classes   int    // classes in the forest, rejected ones included
	Discarded uint64 // classes rejected by Filter
}

// Stats returns the current builder statistics.
func (b *Builder) Stats() Stats {
	return Stats{
		Edges:     b.edges,
		Nodes:     b.keys.Len(),
		Classes:   b.uf.Count(),
		Discarded: b.discarded.GetCardinality(),
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("Builder{edges: %d, nodes: %d, classes: %d, discarded: %d}",
		s.Edges, s.Nodes, s.Classes, s.Discarded)
}
