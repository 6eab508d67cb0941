package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Map returns a generator that delivers transform(v) for every value of the source.
// Stop and Complete pass through unchanged.
func Map[In, Out any](source pushgen.Generator[In], transform func(In) Out) *MapGen[In, Out] {
	return &MapGen[In, Out]{source: source, transform: transform}
}

type MapGen[In, Out any] struct {
	source    pushgen.Generator[In]
	transform func(In) Out
}

type mapFrame[In, Out any] struct {
	transform func(In) Out
	sink      pushgen.Sink[Out]
}

func (g *MapGen[In, Out]) Run(sink pushgen.Sink[Out]) pushgen.GeneratorResult {
	frame := mapFrame[In, Out]{transform: g.transform, sink: sink}
	return g.source.Run(pushgen.Bind(&frame, func(f *mapFrame[In, Out], v In) pushgen.ValueResult {
		return f.sink.Call(f.transform(v))
	}))
}

func (g *MapGen[In, Out]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[Out](g, n)
}
