// Package trackgo builds feature tracks from pairwise image matches.
//
// A track is the set of feature observations, one per view, that
// transitively refer to the same physical point. Trackgo fuses pairwise
// correspondences into tracks with a union-find forest over dense feature
// handles, following the approach of "Unordered feature tracking made fast
// and easy" (Moulon and Monasse, CVMP 2012). The resulting track table
// feeds downstream Structure-from-Motion stages such as triangulation and
// bundle adjustment.
//
// # Quick Start
//
//	var matches model.PairwiseMatches // produced by an upstream matcher
//
//	b := trackgo.NewBuilder()
//	b.Build(matches)        // fuse correspondences into classes
//	b.Filter(true, 2, true) // drop forked and too-short classes
//	tracks := b.Tracks()    // materialize the surviving classes
//
// Queries over the materialized table live in the tracksutil package:
//
//	perView := tracksutil.ComputeTracksPerView(tracks)
//	common := tracksutil.CommonTracksInViewsFast(tracks, perView, []model.ViewID{1, 2, 3})
//
// # Pipeline
//
// Build ingests every correspondence edge exactly once, resolving each
// (view, describer, feature) key to a dense node handle and unioning the
// two endpoints. Duplicate and self-referential edges are absorbed, never
// rejected; the final partition depends only on the edge set, not on
// arrival order.
//
// Filter makes one validity pass over the classes: a class is rejected if
// it contains two observations from the same view (a fork) or spans fewer
// distinct views than the requested minimum. Evaluation is read-only per
// class and may run on multiple goroutines; rejections are committed
// sequentially afterwards.
//
// Tracks materializes the surviving classes into an immutable TracksMap
// with stable ids. The table holds no references into the builder, so the
// builder can be discarded once exported.
//
// # Concurrency
//
// Build mutates shared state and must not be called concurrently. Filter
// parallelizes internally when asked to. The exported TracksMap and every
// function in tracksutil are read-only and safe for concurrent use.
package trackgo
