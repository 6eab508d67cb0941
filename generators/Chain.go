package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Chain returns a generator that delivers every value of first,
// and once first is Complete, every value of second.
//
// A Stop inside first pauses the chain inside first;
// second stays untouched until first has completed.
// After first reported Complete it is never run again.
func Chain[T any](first, second pushgen.Generator[T]) *ChainGen[T] {
	return &ChainGen[T]{first: first, second: second, firstActive: true}
}

type ChainGen[T any] struct {
	first  pushgen.Generator[T]
	second pushgen.Generator[T]

	firstActive bool
}

func (g *ChainGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	if g.firstActive {
		if g.first.Run(sink) == pushgen.Stopped {
			return pushgen.Stopped
		}
		g.firstActive = false
	}
	return g.second.Run(sink)
}

func (g *ChainGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[T](g, n)
}
