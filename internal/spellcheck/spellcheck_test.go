package spellcheck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"lexibloom/internal/common"
	"lexibloom/internal/filter"
)

var dictionary = []string{
	"apple", "banana", "cherry", "durian", "elderberry", "fig", "grapefruit",
	"honeydew", "imbe", "jackfruit", "kiwi", "lime", "mango", "nectarine",
}

func contains(c *Checker) func(string) (bool, error) {
	return func(w string) (bool, error) { return c.IsWordValid(w), nil }
}

func TestBloomChecker(t *testing.T) {
	c, err := New(dictionary)
	require.NoError(t, err)
	require.Equal(t, ModeBloom, c.Mode())
	require.Equal(t, len(dictionary), c.WordCount())

	bf := c.Bloom()
	require.NotNil(t, bf)
	require.Equal(t, len(dictionary), bf.Capacity())
	require.Equal(t, 0.01, bf.ErrorRate())
	require.Equal(t, filter.OptimalNumberOfHashBits(len(dictionary), 0.01), bf.BitCount())

	common.RequireMembership(t, contains(c), dictionary, true)
}

func TestExactChecker(t *testing.T) {
	c, err := New(dictionary, WithBloomFilter(false))
	require.NoError(t, err)
	require.Equal(t, ModeExact, c.Mode())
	require.Nil(t, c.Bloom())

	common.RequireMembership(t, contains(c), dictionary, true)
	common.RequireMembership(t, contains(c), []string{"Apple", "bananas", "", "zzzzz"}, false)
}

func TestCheckerOptions(t *testing.T) {
	c, err := New(dictionary, WithErrorRate(0.001), WithSecondaryHash(filter.Murmur3))
	require.NoError(t, err)
	require.Equal(t, 0.001, c.Bloom().ErrorRate())
	common.RequireMembership(t, contains(c), dictionary, true)

	_, err = New(dictionary, WithErrorRate(1.5))
	require.ErrorIs(t, err, filter.ErrInvalidArgument)
}

func TestEmptyDictionary(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, filter.ErrInvalidArgument)

	c, err := New(nil, WithBloomFilter(false))
	require.NoError(t, err)
	require.False(t, c.IsWordValid("anything"))
}

func TestCheckerAdd(t *testing.T) {
	c, err := New(dictionary)
	require.NoError(t, err)

	require.NoError(t, c.Add("quince"))
	require.True(t, c.IsWordValid("quince"))
	require.Equal(t, len(dictionary)+1, c.WordCount())
}

func TestBloomAgreesWithExact(t *testing.T) {
	words := make([]string, 500)
	for i := range words {
		words[i] = fmt.Sprintf("word%d", i)
	}
	bloom, err := New(words)
	require.NoError(t, err)
	exact, err := New(words, WithBloomFilter(false))
	require.NoError(t, err)

	// Every word the exact checker accepts, the bloom checker accepts too.
	for i := 0; i < 2000; i++ {
		w := fmt.Sprintf("word%d", i)
		if exact.IsWordValid(w) {
			require.True(t, bloom.IsWordValid(w), w)
		}
	}
}
