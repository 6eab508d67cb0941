package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Refs returns a generator that yields pointers into the given slice
// instead of copies of its elements.
// It is the reference yielding counterpart of Slice,
// and the natural source for Cloned pipelines.
//
// The pointers stay valid as long as the backing slice does,
// but a consumer that wants to keep a value past the current Call
// should copy it (or use Cloned).
func Refs[T any](slice []T) *RefsGen[T] {
	return &RefsGen[T]{slice: slice, back: len(slice)}
}

type RefsGen[T any] struct {
	slice []T

	front int
	back  int
}

func (g *RefsGen[T]) Run(sink pushgen.Sink[*T]) pushgen.GeneratorResult {
	for g.front < g.back {
		ptr := &g.slice[g.front]
		g.front++
		if sink.Call(ptr) == pushgen.Stop {
			return pushgen.Stopped
		}
	}
	return pushgen.Complete
}

func (g *RefsGen[T]) RunBack(sink pushgen.Sink[*T]) pushgen.GeneratorResult {
	for g.front < g.back {
		g.back--
		if sink.Call(&g.slice[g.back]) == pushgen.Stop {
			return pushgen.Stopped
		}
	}
	return pushgen.Complete
}

func (g *RefsGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
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

func (g *RefsGen[T]) TryAdvanceBack(n int) (int, pushgen.GeneratorResult) {
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
