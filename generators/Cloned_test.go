package generators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/pushgen"
	"github.com/adamluzsi/pushgen/contracts"
	"github.com/adamluzsi/pushgen/generators"
)

func TestCloned(t *testing.T) {
	t.Parallel()

	t.Run(`it fulfils the generator contract`, contracts.Generator{
		Subject: func(tb testing.TB) (pushgen.Generator[int], []int) {
			data := []int{1, 2, 3, 4, 5}
			return generators.Cloned[int](generators.Refs(data)), data
		},
	}.Test)

	t.Run(`the delivered values are copies, not aliases of the backing slice`, func(t *testing.T) {
		data := []int{1, 2, 3}
		gen := generators.Cloned[int](generators.Refs(data))

		values, result := generators.Collect[int](gen)
		require.Equal(t, pushgen.Complete, result)

		data[0] = 42
		require.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run(`TryAdvance skips values without dereferencing them to the consumer`, func(t *testing.T) {
		data := []int{1, 2, 3, 4}
		gen := generators.Cloned[int](generators.Refs(data))

		advanced, result := gen.TryAdvance(2)
		require.Equal(t, 2, advanced)
		require.Equal(t, pushgen.Stopped, result)

		values, _ := generators.Collect[int](gen)
		require.Equal(t, []int{3, 4}, values)
	})
}
