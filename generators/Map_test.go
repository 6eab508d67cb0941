package generators_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/pushgen"
	"github.com/adamluzsi/pushgen/contracts"
	"github.com/adamluzsi/pushgen/generators"
)

func ExampleMap() {
	gen := generators.Map[int, string](
		generators.Slice([]int{1, 2, 3}),
		strconv.Itoa)

	generators.ForEach[string](gen, func(s string) {
		fmt.Println(s)
	})

	// Output:
	// 1
	// 2
	// 3
}

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run(`it fulfils the generator contract`, contracts.Generator{
		Subject: func(tb testing.TB) (pushgen.Generator[int], []int) {
			gen := generators.Map(generators.Slice([]int{1, 2, 3, 4}), func(n int) int {
				return n * 3
			})
			return gen, []int{3, 6, 9, 12}
		},
	}.Test)

	t.Run(`every value is transformed, order and count are preserved`, func(t *testing.T) {
		gen := generators.Map(generators.Slice([]int{1, 2, 3}), func(n int) string {
			return strconv.Itoa(n * 2)
		})

		values, result := generators.Collect[string](gen)
		require.Equal(t, pushgen.Complete, result)
		require.Equal(t, []string{`2`, `4`, `6`}, values)
	})

	t.Run(`a pause inside the source resumes without re-transforming delivered values`, func(t *testing.T) {
		transformed := 0
		gen := generators.Map(newStoppingGen(2, []int{1, 2, 3, 4}), func(n int) int {
			transformed++
			return n + 100
		})

		require.Equal(t, []int{101, 102, 103, 104}, drain[int](gen))
		require.Equal(t, 4, transformed, `each source value is transformed exactly once`)
	})
}
