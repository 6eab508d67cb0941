package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Take returns a generator that forwards at most amount values from the source.
//
// The remaining budget persists across paused and resumed runs.
// Once the budget reaches zero the take is Complete,
// regardless of whether the source could produce more:
// the take owns the completion decision from that point on.
func Take[T any](source pushgen.Generator[T], amount int) *TakeGen[T] {
	return &TakeGen[T]{source: source, left: amount}
}

type TakeGen[T any] struct {
	source pushgen.Generator[T]
	left   int
}

type takeFrame[T any] struct {
	gen  *TakeGen[T]
	sink pushgen.Sink[T]
}

func (g *TakeGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	if g.left <= 0 {
		return pushgen.Complete
	}

	frame := takeFrame[T]{gen: g, sink: sink}
	result := g.source.Run(pushgen.Bind(&frame, func(f *takeFrame[T], v T) pushgen.ValueResult {
		f.gen.left--
		res := f.sink.Call(v)
		if f.gen.left == 0 {
			// The budget is spent, force the source to pause
			// even when the consumer would have continued.
			return pushgen.Stop
		}
		return res
	}))

	if result == pushgen.Complete {
		g.left = 0
		return pushgen.Complete
	}
	if g.left == 0 {
		return pushgen.Complete
	}
	return result
}

func (g *TakeGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[T](g, n)
}
