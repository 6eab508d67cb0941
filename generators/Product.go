package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Product folds the generator with multiplication,
// starting from the multiplicative identity.
// An empty generator multiplies to one.
func Product[T Number](g pushgen.Generator[T]) T {
	var product T = 1
	g.Run(pushgen.SinkFunc(func(v T) pushgen.ValueResult {
		product *= v
		return pushgen.MoreValues
	}))
	return product
}
