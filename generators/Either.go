package generators

import (
	"github.com/adamluzsi/pushgen"
)

// EitherGen is a two-case sum generator.
// It delegates the generator contract to whichever case is populated,
// which makes it possible to select between two differently shaped pipelines
// behind one stored type.
type EitherGen[T any] struct {
	left  pushgen.Generator[T]
	right pushgen.Generator[T]
}

// Left returns an EitherGen populated with its left case.
func Left[T any](gen pushgen.Generator[T]) *EitherGen[T] {
	return &EitherGen[T]{left: gen}
}

// Right returns an EitherGen populated with its right case.
func Right[T any](gen pushgen.Generator[T]) *EitherGen[T] {
	return &EitherGen[T]{right: gen}
}

func (g *EitherGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	if g.left != nil {
		return g.left.Run(sink)
	}
	return g.right.Run(sink)
}

func (g *EitherGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	if g.left != nil {
		return g.left.TryAdvance(n)
	}
	return g.right.TryAdvance(n)
}
