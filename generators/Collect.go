package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Collect gathers every value the generator still delivers into a slice,
// along with the terminal result of the run.
func Collect[T any](g pushgen.Generator[T]) ([]T, pushgen.GeneratorResult) {
	var values []T
	result := g.Run(pushgen.SinkFunc(func(v T) pushgen.ValueResult {
		values = append(values, v)
		return pushgen.MoreValues
	}))
	return values, result
}
