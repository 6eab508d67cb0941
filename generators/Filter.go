package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Filter returns a generator that only delivers values the predicate accepts.
// Rejected values are discarded silently, within the same run,
// they never surface as a pause to the consumer.
func Filter[T any](source pushgen.Generator[T], predicate func(T) bool) *FilterGen[T] {
	return &FilterGen[T]{source: source, predicate: predicate}
}

type FilterGen[T any] struct {
	source    pushgen.Generator[T]
	predicate func(T) bool
}

type filterFrame[T any] struct {
	predicate func(T) bool
	sink      pushgen.Sink[T]
}

func (g *FilterGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	frame := filterFrame[T]{predicate: g.predicate, sink: sink}
	return g.source.Run(pushgen.Bind(&frame, func(f *filterFrame[T], v T) pushgen.ValueResult {
		if !f.predicate(v) {
			return pushgen.MoreValues
		}
		return f.sink.Call(v)
	}))
}

func (g *FilterGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[T](g, n)
}
