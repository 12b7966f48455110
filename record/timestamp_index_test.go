package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTSIndexInsert(t *testing.T) {
	t.Run("SortedOrder", func(t *testing.T) {
		var idx tsIndex
		for _, ts := range []uint64{50, 10, 30, 20, 40} {
			require.True(t, idx.insert(ts))
		}
		require.Equal(t, []uint64{10, 20, 30, 40, 50}, idx.entries)
	})

	t.Run("Duplicates", func(t *testing.T) {
		var idx tsIndex
		require.True(t, idx.insert(10))
		require.False(t, idx.insert(10))
		require.Equal(t, 1, idx.count())
	})

	t.Run("Boundaries", func(t *testing.T) {
		var idx tsIndex
		require.True(t, idx.insert(20))
		require.True(t, idx.insert(10)) // front
		require.True(t, idx.insert(30)) // back
		require.Equal(t, []uint64{10, 20, 30}, idx.entries)
	})
}

func TestTSIndexRemove(t *testing.T) {
	var idx tsIndex
	for _, ts := range []uint64{10, 20, 30} {
		idx.insert(ts)
	}

	idx.remove(20)
	require.Equal(t, []uint64{10, 30}, idx.entries)

	// Removing an absent entry is a no-op.
	idx.remove(99)
	require.Equal(t, 2, idx.count())

	idx.remove(10)
	idx.remove(30)
	require.Equal(t, 0, idx.count())
}

func TestTSIndexContains(t *testing.T) {
	var idx tsIndex
	idx.insert(10)
	idx.insert(30)

	require.True(t, idx.contains(10))
	require.True(t, idx.contains(30))
	require.False(t, idx.contains(20))
	require.False(t, idx.contains(0))
}

func TestTSIndexClear(t *testing.T) {
	var idx tsIndex
	idx.insert(10)
	idx.insert(20)

	idx.clear()
	require.Equal(t, 0, idx.count())
	require.False(t, idx.contains(10))

	// Reusable after clear.
	require.True(t, idx.insert(5))
	require.Equal(t, []uint64{5}, idx.entries)
}
