package model

import (
	"sort"
)

// Track is one materialized track: a set of feature observations, one per
// view, believed to originate from the same physical point.
//
// A Track is immutable after materialization. FeatPerView holds exactly one
// feature index per view; DescType tags the whole track with the describer
// that produced its observations.
type Track struct {
	DescType    DescriberType
	FeatPerView map[ViewID]FeatureIndex
}

// Len returns the number of views the track spans.
func (t Track) Len() int {
	return len(t.FeatPerView)
}

// Views returns the track's view ids in ascending order.
func (t Track) Views() []ViewID {
	views := make([]ViewID, 0, len(t.FeatPerView))
	for v := range t.FeatPerView {
		views = append(views, v)
	}
	sort.Slice(views, func(i, j int) bool { return views[i] < views[j] })
	return views
}

// FeatureIn returns the feature index observed in the given view.
func (t Track) FeatureIn(view ViewID) (FeatureIndex, bool) {
	feat, ok := t.FeatPerView[view]
	return feat, ok
}

// TracksMap is the track table: one entry per materialized track.
// Repeated export from the same built and filtered state yields the same
// table.
type TracksMap map[TrackID]Track

// TrackIDs returns all track ids in ascending order.
func (tm TracksMap) TrackIDs() []TrackID {
	ids := make([]TrackID, 0, len(tm))
	for id := range tm {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// TracksPyramidPerView maps, for each view, a feature observation to its
// cell position in a spatial pyramid: map[viewID]map[trackID*depth+level]
// cell. Only the shape is defined here; construction belongs to the
// spatial-selection stage that consumes track tables.
type TracksPyramidPerView map[ViewID]map[uint64]uint64
