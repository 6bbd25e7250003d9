// Package tracksutil provides read-only queries over a materialized track
// table.
//
// Most queries come in two flavors: a slow one that scans the whole
// TracksMap, and a fast one that works off the per-view inverted index
// built by ComputeTracksPerView. The fast paths rely on sorted track-id
// sequences; that invariant is carried by the trackset.Set type itself, so
// an unsorted index cannot be handed to them by accident. Both flavors
// return identical results.
//
// All functions here are pure over their inputs and safe for concurrent
// use as long as nobody mutates the table underneath them.
package tracksutil
