package generators

import (
	"github.com/adamluzsi/pushgen"
)

// ForEach drives the generator with a consumer that always requests more values.
// The consumer cannot stop the run through this entry point,
// only the generator itself can pause (for example a Take whose budget ran out).
// The terminal result of the run is returned.
func ForEach[T any](g pushgen.Generator[T], fn func(T)) pushgen.GeneratorResult {
	return g.Run(pushgen.SinkFunc(func(v T) pushgen.ValueResult {
		fn(v)
		return pushgen.MoreValues
	}))
}
