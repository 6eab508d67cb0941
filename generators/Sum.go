package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Number covers the numeric kinds that Sum and Product accumulate over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum folds the generator with addition, starting from the additive identity.
// An empty generator sums to zero.
// Fixed width integers wrap around on overflow, as Go arithmetic does.
func Sum[T Number](g pushgen.Generator[T]) T {
	var total T
	g.Run(pushgen.SinkFunc(func(v T) pushgen.ValueResult {
		total += v
		return pushgen.MoreValues
	}))
	return total
}
