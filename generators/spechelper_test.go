package generators_test

import (
	"github.com/adamluzsi/pushgen"
	"github.com/adamluzsi/pushgen/generators"
)

// stoppingGen delivers the values of a slice but pauses on its own
// once its countdown runs out, including a spontaneous pause before the first value.
// It is used to inject Stopped results at arbitrary points of a pipeline,
// so the resumability of the adaptors can be verified.
type stoppingGen[T any] struct {
	stopAt int
	stash  *T
	source *generators.SliceGen[T]
}

func newStoppingGen[T any](stopAt int, data []T) *stoppingGen[T] {
	return &stoppingGen[T]{stopAt: stopAt, source: generators.Slice(data)}
}

func (g *stoppingGen[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	if g.stopAt == 0 {
		g.stopAt--
		return pushgen.Stopped
	}

	if g.stash != nil {
		value := *g.stash
		g.stash = nil
		if sink.Call(value) == pushgen.Stop {
			return pushgen.Stopped
		}
	}

	result := g.source.Run(pushgen.SinkFunc(func(v T) pushgen.ValueResult {
		old := g.stopAt
		g.stopAt--
		if old == 0 {
			value := v
			g.stash = &value
			return pushgen.Stop
		}
		return sink.Call(v)
	}))
	if result == pushgen.Complete {
		g.stopAt = -1
	}
	return result
}

func (g *stoppingGen[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[T](g, n)
}

// drain keeps re-running the generator until it is Complete,
// gathering everything it delivers on the way.
func drain[T any](g pushgen.Generator[T]) []T {
	var out []T
	for {
		values, result := generators.Collect(g)
		out = append(out, values...)
		if result == pushgen.Complete {
			return out
		}
	}
}

// collectLimited runs the generator with a consumer that requests Stop
// once limit values arrived within this run.
func collectLimited[T any](g pushgen.Generator[T], limit int) ([]T, pushgen.GeneratorResult) {
	var values []T
	result := g.Run(pushgen.SinkFunc(func(v T) pushgen.ValueResult {
		values = append(values, v)
		if len(values) == limit {
			return pushgen.Stop
		}
		return pushgen.MoreValues
	}))
	return values, result
}

// next probes a single value from the front of the generator.
func next[T any](g pushgen.Generator[T]) (T, bool) {
	var (
		value T
		ok    bool
	)
	g.Run(pushgen.SinkFunc(func(v T) pushgen.ValueResult {
		value, ok = v, true
		return pushgen.Stop
	}))
	return value, ok
}

// nextBack probes a single value from the back of the generator.
func nextBack[T any](g pushgen.ReverseGenerator[T]) (T, bool) {
	var (
		value T
		ok    bool
	)
	g.RunBack(pushgen.SinkFunc(func(v T) pushgen.ValueResult {
		value, ok = v, true
		return pushgen.Stop
	}))
	return value, ok
}
