package tracksutil

import (
	"sort"

	"github.com/sfmkit/trackgo/model"
	"github.com/sfmkit/trackgo/trackset"
)

// TracksPerView is the per-view inverted index: for each view, the set of
// track ids visible in it. Sets iterate in ascending id order by contract.
type TracksPerView map[model.ViewID]*trackset.Set

// ComputeTracksPerView builds the inverted index from a track table.
func ComputeTracksPerView(tracks model.TracksMap) TracksPerView {
	perView := make(TracksPerView)
	for id, track := range tracks {
		for view := range track.FeatPerView {
			set, ok := perView[view]
			if !ok {
				set = trackset.New()
				perView[view] = set
			}
			set.Add(id)
		}
	}
	return perView
}

// TrackIDSet returns the ids of all tracks in the table.
func TrackIDSet(tracks model.TracksMap) *trackset.Set {
	set := trackset.New()
	for id := range tracks {
		set.Add(id)
	}
	return set
}

// Select returns the subset of the table whose ids are in the given set.
func Select(tracks model.TracksMap, ids *trackset.Set) model.TracksMap {
	out := make(model.TracksMap, ids.Cardinality())
	for id := range ids.Iterator() {
		if track, ok := tracks[id]; ok {
			out[id] = track
		}
	}
	return out
}

// CommonTracksInViews returns the tracks visible in every one of the given
// views, scanning the full table. An empty view set yields an empty table.
func CommonTracksInViews(tracks model.TracksMap, views []model.ViewID) model.TracksMap {
	out := make(model.TracksMap)
	if len(views) == 0 {
		return out
	}

	for id, track := range tracks {
		all := true
		for _, view := range views {
			if _, ok := track.FeatPerView[view]; !ok {
				all = false
				break
			}
		}
		if all {
			out[id] = track
		}
	}
	return out
}

// CommonTrackIDs intersects the per-view id sets of the given views. Views
// absent from the index contribute the empty set, so the result is empty.
func CommonTrackIDs(perView TracksPerView, views []model.ViewID) *trackset.Set {
	if len(views) == 0 {
		return trackset.New()
	}

	sets := make([]*trackset.Set, 0, len(views))
	for _, view := range views {
		set, ok := perView[view]
		if !ok {
			return trackset.New()
		}
		sets = append(sets, set)
	}
	return trackset.Intersect(sets...)
}

// CommonTracksInViewsFast is the index-backed variant of
// CommonTracksInViews. Results are identical; the intersection runs over
// the sorted per-view sets instead of scanning the table.
func CommonTracksInViewsFast(tracks model.TracksMap, perView TracksPerView, views []model.ViewID) model.TracksMap {
	return Select(tracks, CommonTrackIDs(perView, views))
}

// TracksInView returns the ids of all tracks observed in a view, scanning
// the full table. An unknown view yields the empty set.
func TracksInView(tracks model.TracksMap, view model.ViewID) *trackset.Set {
	set := trackset.New()
	for id, track := range tracks {
		if _, ok := track.FeatPerView[view]; ok {
			set.Add(id)
		}
	}
	return set
}

// TracksInViewFast is the index-backed variant of TracksInView.
func TracksInViewFast(perView TracksPerView, view model.ViewID) *trackset.Set {
	if set, ok := perView[view]; ok {
		return set.Clone()
	}
	return trackset.New()
}

// TracksInViews returns the ids of all tracks visible from any of the
// given views, scanning the full table.
func TracksInViews(tracks model.TracksMap, views []model.ViewID) *trackset.Set {
	out := trackset.New()
	for _, view := range views {
		out.Or(TracksInView(tracks, view))
	}
	return out
}

// TracksInViewsFast is the index-backed variant of TracksInViews.
func TracksInViewsFast(perView TracksPerView, views []model.ViewID) *trackset.Set {
	out := trackset.New()
	for _, view := range views {
		if set, ok := perView[view]; ok {
			out.Or(set)
		}
	}
	return out
}

// TrackLengthHistogram returns, for each track length, the number of
// tracks spanning that many views.
func TrackLengthHistogram(tracks model.TracksMap) map[int]int {
	hist := make(map[int]int)
	for _, track := range tracks {
		hist[track.Len()]++
	}
	return hist
}

// ViewsInTracks returns the ascending set of view ids observed by any
// track in the table.
func ViewsInTracks(tracks model.TracksMap) []model.ViewID {
	seen := make(map[model.ViewID]struct{})
	for _, track := range tracks {
		for view := range track.FeatPerView {
			seen[view] = struct{}{}
		}
	}
	return sortedViews(seen)
}

// ViewsInIndex returns the ascending set of view ids present in the
// inverted index.
func ViewsInIndex(perView TracksPerView) []model.ViewID {
	seen := make(map[model.ViewID]struct{}, len(perView))
	for view := range perView {
		seen[view] = struct{}{}
	}
	return sortedViews(seen)
}

func sortedViews(seen map[model.ViewID]struct{}) []model.ViewID {
	views := make([]model.ViewID, 0, len(seen))
	for view := range seen {
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool { return views[i] < views[j] })
	return views
}

// ViewFeature is one observation inside a view: the describer that
// produced it and its feature index.
type ViewFeature struct {
	Desc model.DescriberType
	Feat model.FeatureIndex
}

// FeaturesInViewPerTrack returns, for each selected track that observes
// the given view, its feature in that view. Unknown track ids and tracks
// not observing the view are skipped; callers needing exactly-two
// semantics use TracksToPairs instead.
func FeaturesInViewPerTrack(tracks model.TracksMap, ids []model.TrackID, view model.ViewID) []ViewFeature {
	out := make([]ViewFeature, 0, len(ids))
	for _, id := range ids {
		track, ok := tracks[id]
		if !ok {
			continue
		}
		if feat, ok := track.FeatPerView[view]; ok {
			out = append(out, ViewFeature{Desc: track.DescType, Feat: feat})
		}
	}
	return out
}

// TracksToPairs converts two-view tracks into ordered feature-index pairs:
// the feature of the lower view id first.
//
// Every selected track must exist and span exactly two views; a violation
// is an invariant failure reported as an error, not silently skipped.
func TracksToPairs(tracks model.TracksMap, ids []model.TrackID) ([]model.IndMatch, error) {
	out := make([]model.IndMatch, 0, len(ids))
	for _, id := range ids {
		track, ok := tracks[id]
		if !ok {
			return nil, &ObservationCountError{TrackID: id, Count: 0}
		}
		if track.Len() != 2 {
			return nil, &ObservationCountError{TrackID: id, Count: track.Len()}
		}

		views := track.Views()
		out = append(out, model.IndMatch{
			I: track.FeatPerView[views[0]],
			J: track.FeatPerView[views[1]],
		})
	}
	return out, nil
}
