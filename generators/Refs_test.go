package generators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/pushgen"
	"github.com/adamluzsi/pushgen/generators"
)

func TestRefs(t *testing.T) {
	t.Parallel()

	t.Run(`the delivered pointers alias the backing slice`, func(t *testing.T) {
		data := []int{1, 2, 3}

		result := generators.ForEach[*int](generators.Refs(data), func(ptr *int) {
			*ptr *= 10
		})

		require.Equal(t, pushgen.Complete, result)
		require.Equal(t, []int{10, 20, 30}, data)
	})

	t.Run(`a consumer Stop leaves the cursor past the delivered element`, func(t *testing.T) {
		data := []int{1, 2, 3, 4}
		gen := generators.Refs(data)

		prefix, result := collectLimited[*int](gen, 2)
		require.Equal(t, pushgen.Stopped, result)
		require.Len(t, prefix, 2)
		require.Equal(t, 2, *prefix[1])

		var suffix []int
		generators.ForEach[*int](gen, func(ptr *int) { suffix = append(suffix, *ptr) })
		require.Equal(t, []int{3, 4}, suffix)
	})

	t.Run(`backward consumption mirrors the slice from its end`, func(t *testing.T) {
		data := []string{`a`, `b`, `c`}
		gen := generators.Refs(data)

		var values []string
		result := gen.RunBack(pushgen.SinkFunc(func(ptr *string) pushgen.ValueResult {
			values = append(values, *ptr)
			return pushgen.MoreValues
		}))

		require.Equal(t, pushgen.Complete, result)
		require.Equal(t, []string{`c`, `b`, `a`}, values)
	})

	t.Run(`TryAdvance jumps the cursor`, func(t *testing.T) {
		data := []int{1, 2, 3, 4, 5}
		gen := generators.Refs(data)

		advanced, result := gen.TryAdvance(4)
		require.Equal(t, 4, advanced)
		require.Equal(t, pushgen.Stopped, result)

		v, ok := next[*int](gen)
		require.True(t, ok)
		require.Equal(t, 5, *v)
	})
}
