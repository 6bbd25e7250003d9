// Package model defines core types used throughout trackgo.
//
// # Identity Types
//
//   - ViewID: Identifier of one input image (uint32)
//   - FeatureIndex: Index of a detected feature within one view (uint32)
//   - TrackID: Stable identifier of a materialized track (uint32)
//   - DescriberType: Feature extractor that produced an observation
//   - FeatureKey: (ViewID, DescriberType, FeatureIndex) — globally unique
//     identifier of one detected feature
//
// # Data Types
//
//   - IndMatch: One feature-index correspondence between two views
//   - PairwiseMatches: All correspondences, keyed by ordered view pair
//   - Track: A materialized track (describer type plus one observation
//     per view)
//   - TracksMap: Track table keyed by TrackID
//
// model is a leaf package: every other package in the module imports it,
// it imports nothing but the standard library.
package model
