package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Slice returns a generator over the elements of the given slice.
//
// The generator is bidirectional: Run delivers elements from the front cursor upward,
// RunBack delivers elements from the back cursor downward,
// and the generator is Complete once the two cursors meet.
func Slice[T any](slice []T) *SliceGen[T] {
	return &SliceGen[T]{slice: slice, back: len(slice)}
}

type SliceGen[T any] struct {
	slice []T

	front int
	back  int
}

func (g *SliceGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	for g.front < g.back {
		value := g.slice[g.front]
		g.front++
		if sink.Call(value) == pushgen.Stop {
			return pushgen.Stopped
		}
	}
	return pushgen.Complete
}

func (g *SliceGen[T]) RunBack(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	for g.front < g.back {
		g.back--
		if sink.Call(g.slice[g.back]) == pushgen.Stop {
			return pushgen.Stopped
		}
	}
	return pushgen.Complete
}

// TryAdvance jumps the front cursor directly instead of running a counting sink.
func (g *SliceGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	if n <= 0 {
		return 0, pushgen.Stopped
	}
	if remaining := g.back - g.front; remaining < n {
		g.front = g.back
		return remaining, pushgen.Complete
	}
	g.front += n
	return n, pushgen.Stopped
}

// TryAdvanceBack jumps the back cursor directly.
func (g *SliceGen[T]) TryAdvanceBack(n int) (int, pushgen.GeneratorResult) {
	if n <= 0 {
		return 0, pushgen.Stopped
	}
	if remaining := g.back - g.front; remaining < n {
		g.back = g.front
		return remaining, pushgen.Complete
	}
	g.back -= n
	return n, pushgen.Stopped
}
