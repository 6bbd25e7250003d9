// Package testutil provides testing utilities for trackgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible random correspondence
// sets with a known shape.
//
//	rng := testutil.NewRNG(seed)
//	matches := testutil.RandomMatches(rng, testutil.MatchesShape{
//	    Views:            20,
//	    FeaturesPerView:  500,
//	    MatchesPerPair:   200,
//	})
package testutil

import (
	"math/rand"
	"sync"

	"github.com/sfmkit/trackgo/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	mu   sync.Mutex
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// MatchesShape describes the random correspondence set to generate.
type MatchesShape struct {
	// Views is the number of views; pairs link consecutive view ids.
	Views int
	// FeaturesPerView bounds the feature indices drawn on each side.
	FeaturesPerView int
	// MatchesPerPair is the number of correspondences per view pair.
	MatchesPerPair int
	// Desc tags all generated correspondences; zero value means SIFT.
	Desc model.DescriberType
}

// RandomMatches generates a pairwise match set linking consecutive views.
// The same RNG seed and shape always yield the same set.
func RandomMatches(rng *RNG, shape MatchesShape) model.PairwiseMatches {
	desc := shape.Desc
	if desc == model.DescriberUninitialized {
		desc = model.DescriberSIFT
	}

	matches := make(model.PairwiseMatches, shape.Views)
	for v := 0; v < shape.Views-1; v++ {
		pair := model.ViewPair{I: model.ViewID(v), J: model.ViewID(v + 1)}
		ms := make([]model.IndMatch, shape.MatchesPerPair)
		for i := range ms {
			ms[i] = model.IndMatch{
				I: model.FeatureIndex(rng.Intn(shape.FeaturesPerView)),
				J: model.FeatureIndex(rng.Intn(shape.FeaturesPerView)),
			}
		}
		matches[pair] = model.MatchesPerDescriber{desc: ms}
	}
	return matches
}
