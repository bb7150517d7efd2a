package filter

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJenkinsOneAtATime(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"", 0},
		{"a", -902917054},
		{"cat", -1324930647},
		{"dog", 1747546939},
		{"bird", 398548359},
		{"hello", -1259046373},
		{"The quick brown fox", 2008246150},
		{"zzzzzzzzzz", -23776172},
		{"é", 2102098517},
		{"😀", -2009918598}, // hashed as a surrogate pair
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, JenkinsOneAtATime(tt.in), "JenkinsOneAtATime(%q)", tt.in)
	}
}

func TestComputeIndex(t *testing.T) {
	tests := []struct {
		h1, h2 int32
		i, m   int
		want   int
	}{
		{0, 0, 5, 10, 0},
		{7, 3, 2, 10, 3},
		{-7, 0, 0, 10, 7},
		{math.MaxInt32, 1, 1, 100, 48},      // wraps to MinInt32
		{math.MinInt32, -1, 3, 97, 63},      // wraps to MaxInt32-2
		{123456789, 987654321, 6, 959, 680}, // wraps to 1754415419
		{-1, -1, 6, 7, 0},
	}

	for _, tt := range tests {
		got := ComputeIndex(tt.h1, tt.h2, tt.i, tt.m)
		require.Equal(t, tt.want, got, "ComputeIndex(%d, %d, %d, %d)", tt.h1, tt.h2, tt.i, tt.m)
	}
}

func TestComputeIndexInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{1, 2, 7, 64, 959, 1 << 20, math.MaxInt32}

	for trial := 0; trial < 10000; trial++ {
		h1 := int32(rng.Uint32())
		h2 := int32(rng.Uint32())
		m := sizes[trial%len(sizes)]
		for i := 0; i < 16; i++ {
			idx := ComputeIndex(h1, h2, i, m)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, m)
		}
	}
}

func TestComputeIndexCollapsesOnMultipleOfM(t *testing.T) {
	// A secondary hash that is a multiple of m yields one distinct index.
	for _, h2 := range []int32{0, 100, -300} {
		first := ComputeIndex(12345, h2, 0, 100)
		for i := 1; i < 10; i++ {
			require.Equal(t, first, ComputeIndex(12345, h2, i, 100), "h2=%d i=%d", h2, i)
		}
	}
}

func TestStringHashes(t *testing.T) {
	for _, name := range []string{"jenkins", "fnv", "murmur3", "xxhash"} {
		h, ok := LookupStringHash(name)
		require.True(t, ok, name)

		// Deterministic, and sensitive to input.
		require.Equal(t, h("testkey"), h("testkey"), name)
		require.NotEqual(t, h("testkey"), h("testkey2"), name)
	}

	_, ok := LookupStringHash("md5")
	require.False(t, ok)

	require.Equal(t, StringHash("testkey"), StringHash("testkey"))
	require.NotEqual(t, StringHash("testkey"), StringHash("testkey2"))

	// Known FNV-1a vector.
	require.Equal(t, int32(-468965076), FNV1a32("a"))
}

func TestDefaultSecondary(t *testing.T) {
	h, ok := defaultSecondary[string]()
	require.True(t, ok)
	require.Equal(t, JenkinsOneAtATime("cat"), h("cat"))

	_, ok = defaultSecondary[int]()
	require.False(t, ok)

	type word string
	_, ok = defaultSecondary[word]()
	require.False(t, ok)
}

func TestPrimaryHashIsStablePerFilter(t *testing.T) {
	hs := primaryHash[string]()
	require.Equal(t, StringHash("cat"), hs("cat"))

	hi := primaryHash[int]()
	require.Equal(t, hi(42), hi(42))

	type point struct{ x, y int }
	hp := primaryHash[point]()
	require.Equal(t, hp(point{1, 2}), hp(point{1, 2}))
}
