package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/pushgen/fixtures"
)

func TestRandomIntn(t *testing.T) {
	t.Parallel()

	for i := 0; i < 42; i++ {
		out := fixtures.RandomIntn(42)
		require.True(t, 0 <= out)
		require.True(t, out < 42)
	}
}

func TestRandomInts(t *testing.T) {
	t.Parallel()

	values := fixtures.RandomInts(128)
	require.Len(t, values, 128)

	allSame := true
	for _, v := range values {
		if v != values[0] {
			allSame = false
		}
	}
	require.False(t, allSame, `128 random values are not expected to be all equal`)
}

func TestRandomNames(t *testing.T) {
	t.Parallel()

	names := fixtures.RandomNames(16)
	require.Len(t, names, 16)
	for _, name := range names {
		require.NotEmpty(t, name)
	}
}
