package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("ResolveCreates", func(t *testing.T) {
		m := New[string](0)

		h, created := m.Resolve("a")
		require.True(t, created)
		assert.Equal(t, uint32(0), h)

		h, created = m.Resolve("b")
		require.True(t, created)
		assert.Equal(t, uint32(1), h)

		assert.Equal(t, 2, m.Len())
	})

	t.Run("ResolveExisting", func(t *testing.T) {
		m := New[string](4)

		first, _ := m.Resolve("a")
		again, created := m.Resolve("a")

		assert.False(t, created)
		assert.Equal(t, first, again)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("Bijection", func(t *testing.T) {
		m := New[int](0)
		for i := 0; i < 100; i++ {
			h, created := m.Resolve(i * 3)
			require.True(t, created)
			require.Equal(t, uint32(i), h)
		}

		for i := 0; i < 100; i++ {
			h, ok := m.Lookup(i * 3)
			require.True(t, ok)
			assert.Equal(t, i*3, m.Key(h))
		}
	})

	t.Run("LookupMissing", func(t *testing.T) {
		m := New[string](0)
		m.Resolve("a")

		_, ok := m.Lookup("b")
		assert.False(t, ok)
	})
}
