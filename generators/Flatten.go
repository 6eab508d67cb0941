package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Flatten concatenates the values of a generator of generators.
//
// Each run first resumes the inner generator that was paused previously, if any.
// Only once that inner generator completes does the flatten pull the next value
// from the outer source. A consumer Stop inside an inner generator keeps the
// inner generator buffered for the next run, the outer source is not advanced
// past it until it completes.
func Flatten[T any](source pushgen.Generator[pushgen.Generator[T]]) *FlattenGen[T] {
	return &FlattenGen[T]{source: source}
}

// FlattenSlices is a convenience for the common case where the outer source
// yields plain slices rather than ready-made generators.
func FlattenSlices[T any](source pushgen.Generator[[]T]) *FlattenGen[T] {
	return Flatten[T](Map(source, func(s []T) pushgen.Generator[T] {
		return Slice(s)
	}))
}

type FlattenGen[T any] struct {
	source  pushgen.Generator[pushgen.Generator[T]]
	current pushgen.Generator[T]
}

type flattenFrame[T any] struct {
	gen  *FlattenGen[T]
	sink pushgen.Sink[T]
}

func (g *FlattenGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	if g.current != nil {
		if g.current.Run(sink) == pushgen.Stopped {
			return pushgen.Stopped
		}
		g.current = nil
	}

	frame := flattenFrame[T]{gen: g, sink: sink}
	return g.source.Run(pushgen.Bind(&frame, func(f *flattenFrame[T], inner pushgen.Generator[T]) pushgen.ValueResult {
		f.gen.current = inner
		if inner.Run(f.sink) == pushgen.Stopped {
			return pushgen.Stop
		}
		f.gen.current = nil
		return pushgen.MoreValues
	}))
}

func (g *FlattenGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[T](g, n)
}
