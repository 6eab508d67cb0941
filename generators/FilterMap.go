package generators

import (
	"github.com/adamluzsi/pushgen"
)

// FilterMap combines Map and Filter in a single adaptor.
// The transform reports whether its result should be delivered,
// a false verdict discards the value like a failed Filter predicate.
func FilterMap[In, Out any](source pushgen.Generator[In], transform func(In) (Out, bool)) *FilterMapGen[In, Out] {
	return &FilterMapGen[In, Out]{source: source, transform: transform}
}

type FilterMapGen[In, Out any] struct {
	source    pushgen.Generator[In]
	transform func(In) (Out, bool)
}

type filterMapFrame[In, Out any] struct {
	transform func(In) (Out, bool)
	sink      pushgen.Sink[Out]
}

func (g *FilterMapGen[In, Out]) Run(sink pushgen.Sink[Out]) pushgen.GeneratorResult {
	frame := filterMapFrame[In, Out]{transform: g.transform, sink: sink}
	return g.source.Run(pushgen.Bind(&frame, func(f *filterMapFrame[In, Out], v In) pushgen.ValueResult {
		out, ok := f.transform(v)
		if !ok {
			return pushgen.MoreValues
		}
		return f.sink.Call(out)
	}))
}

func (g *FilterMapGen[In, Out]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[Out](g, n)
}
