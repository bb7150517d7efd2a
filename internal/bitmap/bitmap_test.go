package bitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBitmap(t *testing.T) {
	for _, numBits := range []uint64{1, 7, 8, 9, 63, 64, 65, 959} {
		b := NewBitmap(numBits)
		require.Equal(t, numBits, b.Len(), "NewBitmap(%d) length", numBits)
		require.Equal(t, uint64(0), b.Count(), "NewBitmap(%d) count", numBits)

		// Verify all bits are 0
		for i := uint64(0); i < numBits; i++ {
			set, err := b.Get(i)
			require.NoError(t, err)
			require.False(t, set, "NewBitmap(%d): bit %d should be 0", numBits, i)
		}
	}
}

func TestSetAndGet(t *testing.T) {
	b := NewBitmap(100)

	positions := map[uint64]struct{}{
		0: {}, 1: {}, 7: {}, 8: {}, 15: {}, 16: {}, 31: {}, 32: {}, 63: {}, 64: {}, 99: {},
	}
	for pos := range positions {
		require.NoError(t, b.Set(pos))
	}

	for i := uint64(0); i < 100; i++ {
		_, shouldBeSet := positions[i]
		set, err := b.Get(i)
		require.NoError(t, err)
		require.Equal(t, shouldBeSet, set, "bit %d set status", i)
	}
	require.Equal(t, uint64(len(positions)), b.Count())
}

func TestIdempotent(t *testing.T) {
	b := NewBitmap(64)

	// Set same bit multiple times
	require.NoError(t, b.Set(42))
	require.NoError(t, b.Set(42))
	require.NoError(t, b.Set(42))

	require.Equal(t, uint64(1), b.Count())
	for i := uint64(0); i < 64; i++ {
		set, err := b.Get(i)
		require.NoError(t, err)
		require.Equal(t, i == 42, set, "bit %d", i)
	}
}

func TestCountNeverDecreases(t *testing.T) {
	b := NewBitmap(37)

	var last uint64
	for i := uint64(0); i < 200; i++ {
		require.NoError(t, b.Set((i*7)%37))
		count := b.Count()
		require.GreaterOrEqual(t, count, last)
		last = count
	}
	require.Equal(t, uint64(37), last)
}

func TestBoundsChecking(t *testing.T) {
	b := NewBitmap(64)

	err := b.Set(64)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = b.Get(64)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = b.Get(^uint64(0))
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	// A rejected Set leaves the bitmap untouched.
	require.Equal(t, uint64(0), b.Count())

	require.NoError(t, b.Set(63))
	set, err := b.Get(63)
	require.NoError(t, err)
	require.True(t, set)
}
