package model

import (
	"fmt"
)

// ViewID identifies one input image.
type ViewID uint32

// FeatureIndex is the index of a detected feature within one view,
// local to the describer that produced it.
type FeatureIndex uint32

// TrackID is the stable identifier of a materialized track.
// IDs are unique within one track table; their numeric order carries no
// meaning beyond uniqueness.
type TrackID uint32

// DescriberType identifies the feature extractor that produced an
// observation. Multiple independent describers may run over the same
// imagery, so a feature is only unique together with its describer.
type DescriberType uint8

const (
	// DescriberUninitialized is the zero value; it never appears in a
	// materialized track.
	DescriberUninitialized DescriberType = iota
	// DescriberSIFT is the SIFT describer.
	DescriberSIFT
	// DescriberSIFTFloat is the float-descriptor SIFT variant.
	DescriberSIFTFloat
	// DescriberAKAZE is the AKAZE describer.
	DescriberAKAZE
	// DescriberAKAZELIOP is the AKAZE describer with LIOP descriptors.
	DescriberAKAZELIOP
	// DescriberAKAZEMLDB is the AKAZE describer with M-LDB descriptors.
	DescriberAKAZEMLDB
	// DescriberCCTAG3 is the 3-crown CCTag marker describer.
	DescriberCCTAG3
	// DescriberCCTAG4 is the 4-crown CCTag marker describer.
	DescriberCCTAG4
)

// String returns the stable name of the describer type.
func (d DescriberType) String() string {
	switch d {
	case DescriberSIFT:
		return "sift"
	case DescriberSIFTFloat:
		return "sift_float"
	case DescriberAKAZE:
		return "akaze"
	case DescriberAKAZELIOP:
		return "akaze_liop"
	case DescriberAKAZEMLDB:
		return "akaze_mldb"
	case DescriberCCTAG3:
		return "cctag3"
	case DescriberCCTAG4:
		return "cctag4"
	default:
		return "uninitialized"
	}
}

// DescriberTypeFromString returns the describer type for a stable name.
func DescriberTypeFromString(s string) (DescriberType, bool) {
	for d := DescriberSIFT; d <= DescriberCCTAG4; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return DescriberUninitialized, false
}

// FeatureKey is the globally unique identifier of one detected feature.
type FeatureKey struct {
	View ViewID
	Desc DescriberType
	Feat FeatureIndex
}

// String returns a compact representation of the key.
func (k FeatureKey) String() string {
	return fmt.Sprintf("%d/%s/%d", k.View, k.Desc, k.Feat)
}

// Less orders keys by view, then describer, then feature index.
func (k FeatureKey) Less(other FeatureKey) bool {
	if k.View != other.View {
		return k.View < other.View
	}
	if k.Desc != other.Desc {
		return k.Desc < other.Desc
	}
	return k.Feat < other.Feat
}
