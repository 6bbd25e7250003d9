package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfmkit/trackgo/model"
)

func TestCodecs(t *testing.T) {
	tracks := model.TracksMap{
		0: {
			DescType:    model.DescriberSIFT,
			FeatPerView: map[model.ViewID]model.FeatureIndex{1: 10, 2: 20},
		},
		7: {
			DescType:    model.DescriberAKAZE,
			FeatPerView: map[model.ViewID]model.FeatureIndex{3: 30},
		},
	}

	for _, c := range []Codec{JSON{}, Gob{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(tracks)
			require.NoError(t, err)

			var got model.TracksMap
			require.NoError(t, c.Unmarshal(data, &got))
			assert.Equal(t, tracks, got)
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "gob"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestMustMarshal(t *testing.T) {
	assert.NotEmpty(t, MustMarshal(nil, map[string]int{"a": 1}))

	assert.Panics(t, func() {
		MustMarshal(JSON{}, func() {})
	})
}
