package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Boxed wraps any generator behind a single concrete type.
//
// An interface value already erases the wrapped implementation,
// but a field or collection that should store arbitrary pipelines needs one
// nameable concrete type to do so, which is what BoxedGen provides.
// The indirection costs one extra dispatch per Run call, not per value,
// since the wrapped generator keeps driving its own values internally.
func Boxed[T any](source pushgen.Generator[T]) *BoxedGen[T] {
	return &BoxedGen[T]{source: source}
}

type BoxedGen[T any] struct {
	source pushgen.Generator[T]
}

func (g *BoxedGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	return g.source.Run(sink)
}

func (g *BoxedGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return g.source.TryAdvance(n)
}
