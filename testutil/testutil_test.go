package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfmkit/trackgo/model"
)

func TestRandomMatches(t *testing.T) {
	shape := MatchesShape{Views: 5, FeaturesPerView: 50, MatchesPerPair: 20}

	t.Run("Shape", func(t *testing.T) {
		matches := RandomMatches(NewRNG(1), shape)

		require.Len(t, matches, 4)
		assert.Equal(t, 80, matches.Count())
		for pair, perDesc := range matches {
			assert.Equal(t, pair.I+1, pair.J)
			assert.Len(t, perDesc[model.DescriberSIFT], 20)
		}
	})

	t.Run("Reproducible", func(t *testing.T) {
		a := RandomMatches(NewRNG(7), shape)
		b := RandomMatches(NewRNG(7), shape)
		assert.Equal(t, a, b)
	})

	t.Run("DescriberTag", func(t *testing.T) {
		matches := RandomMatches(NewRNG(1), MatchesShape{
			Views: 3, FeaturesPerView: 10, MatchesPerPair: 5,
			Desc: model.DescriberAKAZE,
		})
		for _, perDesc := range matches {
			_, ok := perDesc[model.DescriberAKAZE]
			assert.True(t, ok)
		}
	})
}
