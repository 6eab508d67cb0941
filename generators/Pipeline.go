package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Pipe wraps a generator into a Pipeline, the fluent combinator surface.
//
// Every combinator takes ownership of the previous generator and wraps it,
// so a pipeline value is a single owned tree rooted at the outermost adaptor.
// Only the type preserving combinators are available as methods,
// since Go methods cannot introduce new type parameters;
// Map, FilterMap, Cloned, Zip and Flatten stay package functions.
func Pipe[T any](g pushgen.Generator[T]) Pipeline[T] {
	return Pipeline[T]{gen: g}
}

type Pipeline[T any] struct {
	gen pushgen.Generator[T]
}

// Generator exposes the wrapped generator tree.
func (p Pipeline[T]) Generator() pushgen.Generator[T] { return p.gen }

func (p Pipeline[T]) Filter(predicate func(T) bool) Pipeline[T] {
	return Pipeline[T]{gen: Filter(p.gen, predicate)}
}

func (p Pipeline[T]) Take(amount int) Pipeline[T] {
	return Pipeline[T]{gen: Take(p.gen, amount)}
}

func (p Pipeline[T]) Skip(amount int) Pipeline[T] {
	return Pipeline[T]{gen: Skip(p.gen, amount)}
}

func (p Pipeline[T]) Chain(next pushgen.Generator[T]) Pipeline[T] {
	return Pipeline[T]{gen: Chain(p.gen, next)}
}

func (p Pipeline[T]) Boxed() Pipeline[T] {
	return Pipeline[T]{gen: Boxed(p.gen)}
}

func (p Pipeline[T]) ForEach(fn func(T)) pushgen.GeneratorResult {
	return ForEach(p.gen, fn)
}

func (p Pipeline[T]) Collect() ([]T, pushgen.GeneratorResult) {
	return Collect(p.gen)
}

// Run makes a Pipeline usable anywhere a Generator is expected.
func (p Pipeline[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	return p.gen.Run(sink)
}

func (p Pipeline[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return p.gen.TryAdvance(n)
}
