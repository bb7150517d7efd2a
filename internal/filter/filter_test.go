package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExactFilter(t *testing.T) {
	f := NewExactFilter[string]()

	for _, w := range []string{"alpha", "beta", "gamma"} {
		require.NoError(t, f.Add(w))
	}

	for _, w := range []string{"alpha", "beta", "gamma"} {
		ok, err := f.Contains(w)
		require.NoError(t, err)
		require.True(t, ok, w)
	}

	ok, err := f.Contains("delta")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestExactFilterNilItems(t *testing.T) {
	f := NewExactFilter[*int]()
	require.ErrorIs(t, f.Add(nil), ErrNullItem)

	_, err := f.Contains(nil)
	require.ErrorIs(t, err, ErrNullItem)
}
