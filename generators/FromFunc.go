package generators

import (
	"github.com/adamluzsi/pushgen"
)

// FromFunc turns a stepping function into a generator.
// The function is called for each value until it reports false,
// which completes the generator.
// Once completed the stepping function is never called again.
func FromFunc[T any](step func() (T, bool)) *FromFuncGen[T] {
	return &FromFuncGen[T]{step: step}
}

type FromFuncGen[T any] struct {
	step func() (T, bool)
	done bool
}

func (g *FromFuncGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	if g.done {
		return pushgen.Complete
	}
	for {
		value, ok := g.step()
		if !ok {
			g.done = true
			return pushgen.Complete
		}
		if sink.Call(value) == pushgen.Stop {
			return pushgen.Stopped
		}
	}
}

func (g *FromFuncGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[T](g, n)
}
