package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriberType(t *testing.T) {
	t.Run("StringRoundTrip", func(t *testing.T) {
		for d := DescriberSIFT; d <= DescriberCCTAG4; d++ {
			got, ok := DescriberTypeFromString(d.String())
			require.True(t, ok, d.String())
			assert.Equal(t, d, got)
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		_, ok := DescriberTypeFromString("orb")
		assert.False(t, ok)
		assert.Equal(t, "uninitialized", DescriberUninitialized.String())
	})
}

func TestFeatureKey(t *testing.T) {
	a := FeatureKey{View: 1, Desc: DescriberSIFT, Feat: 2}
	b := FeatureKey{View: 1, Desc: DescriberSIFT, Feat: 3}
	c := FeatureKey{View: 2, Desc: DescriberSIFT, Feat: 0}
	d := FeatureKey{View: 1, Desc: DescriberAKAZE, Feat: 0}

	assert.True(t, a.Less(b))
	assert.True(t, a.Less(c))
	assert.True(t, a.Less(d))
	assert.False(t, b.Less(a))
	assert.Equal(t, "1/sift/2", a.String())
}

func TestTrack(t *testing.T) {
	track := Track{
		DescType:    DescriberSIFT,
		FeatPerView: map[ViewID]FeatureIndex{3: 30, 1: 10, 2: 20},
	}

	assert.Equal(t, 3, track.Len())
	assert.Equal(t, []ViewID{1, 2, 3}, track.Views())

	feat, ok := track.FeatureIn(2)
	require.True(t, ok)
	assert.Equal(t, FeatureIndex(20), feat)

	_, ok = track.FeatureIn(9)
	assert.False(t, ok)
}

func TestPairwiseMatchesCount(t *testing.T) {
	pm := PairwiseMatches{
		{I: 1, J: 2}: {DescriberSIFT: {{I: 0, J: 0}, {I: 1, J: 1}}},
		{I: 2, J: 3}: {DescriberSIFT: {{I: 0, J: 0}}, DescriberAKAZE: {{I: 5, J: 6}}},
	}

	assert.Equal(t, 4, pm.Count())
}

func TestTracksMapIDs(t *testing.T) {
	tm := TracksMap{
		4: {DescType: DescriberSIFT, FeatPerView: map[ViewID]FeatureIndex{1: 1, 2: 2}},
		0: {DescType: DescriberSIFT, FeatPerView: map[ViewID]FeatureIndex{1: 3, 2: 4}},
		2: {DescType: DescriberSIFT, FeatPerView: map[ViewID]FeatureIndex{1: 5, 2: 6}},
	}

	assert.Equal(t, []TrackID{0, 2, 4}, tm.TrackIDs())
}
