package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Cloned turns a generator of pointers into a generator of copied values.
// Each pointer is dereferenced before delivery,
// so the consumer receives values it may keep without aliasing the source.
func Cloned[T any](source pushgen.Generator[*T]) *ClonedGen[T] {
	return &ClonedGen[T]{source: source}
}

type ClonedGen[T any] struct {
	source pushgen.Generator[*T]
}

type clonedFrame[T any] struct {
	sink pushgen.Sink[T]
}

func (g *ClonedGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	frame := clonedFrame[T]{sink: sink}
	return g.source.Run(pushgen.Bind(&frame, func(f *clonedFrame[T], ptr *T) pushgen.ValueResult {
		return f.sink.Call(*ptr)
	}))
}

func (g *ClonedGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return g.source.TryAdvance(n)
}
