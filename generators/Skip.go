package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Skip returns a generator that discards the first amount values of the source
// before it delivers anything to the consumer.
//
// The skip budget persists across runs:
// when the source pauses before the budget is spent,
// the skip reports Stopped and continues discarding on the next run.
// When the source completes before the budget is spent,
// the skip is Complete without having delivered a single value.
func Skip[T any](source pushgen.Generator[T], amount int) *SkipGen[T] {
	return &SkipGen[T]{source: source, left: amount}
}

type SkipGen[T any] struct {
	source pushgen.Generator[T]
	left   int
}

func (g *SkipGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	if g.left > 0 {
		// TryAdvance lets random-access sources jump their cursor
		// instead of pushing the discarded values one by one.
		advanced, result := g.source.TryAdvance(g.left)
		g.left -= advanced
		if result == pushgen.Complete {
			g.left = 0
			return pushgen.Complete
		}
		if g.left > 0 {
			return pushgen.Stopped
		}
	}
	return g.source.Run(sink)
}

func (g *SkipGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[T](g, n)
}
