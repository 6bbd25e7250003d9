package model

// ViewPair is an ordered pair of view ids, keying one pairwise match set.
type ViewPair struct {
	I, J ViewID
}

// IndMatch is one feature-index correspondence between the two views of a
// pair: feature I in the first view matches feature J in the second.
type IndMatch struct {
	I, J FeatureIndex
}

// MatchesPerDescriber groups the correspondences of one view pair by the
// describer that produced them. Both endpoints of a correspondence carry
// the describer type of its group.
type MatchesPerDescriber map[DescriberType][]IndMatch

// PairwiseMatches holds all pairwise correspondences of a scene, keyed by
// ordered view pair. The encoding of the upstream matching stage is its
// own concern; this is the shape the fusion engine consumes.
type PairwiseMatches map[ViewPair]MatchesPerDescriber

// Count returns the total number of correspondence edges.
func (pm PairwiseMatches) Count() int {
	n := 0
	for _, perDesc := range pm {
		for _, ms := range perDesc {
			n += len(ms)
		}
	}
	return n
}
