package generators

import (
	"github.com/adamluzsi/pushgen"
)

// Pair holds one value from each side of a Zip.
type Pair[First, Second any] struct {
	First  First
	Second Second
}

// Zip pairs up the values of two generators.
//
// For every value the left side produces, the right side is advanced by exactly one step,
// and the two values are delivered as a Pair.
// The zip is Complete as soon as either side is Complete (the shorter side truncates).
// When the right side pauses without producing a value for the current left value,
// the zip stops without delivering a partial pair.
func Zip[L, R any](left pushgen.Generator[L], right pushgen.Generator[R]) *ZipGen[L, R] {
	return &ZipGen[L, R]{left: left, right: right}
}

type ZipGen[L, R any] struct {
	left  pushgen.Generator[L]
	right pushgen.Generator[R]

	done bool
}

type zipFrame[L, R any] struct {
	right       pushgen.Generator[R]
	rightResult pushgen.GeneratorResult
	sink        pushgen.Sink[Pair[L, R]]
}

type zipProbe[R any] struct {
	value R
	ok    bool
}

func (g *ZipGen[L, R]) Run(sink pushgen.Sink[Pair[L, R]]) pushgen.GeneratorResult {
	if g.done {
		return pushgen.Complete
	}

	frame := zipFrame[L, R]{right: g.right, rightResult: pushgen.Stopped, sink: sink}
	leftResult := g.left.Run(pushgen.Bind(&frame, func(f *zipFrame[L, R], left L) pushgen.ValueResult {
		// Probe a single value from the right side.
		var probe zipProbe[R]
		f.rightResult = f.right.Run(pushgen.Bind(&probe, func(p *zipProbe[R], right R) pushgen.ValueResult {
			p.value, p.ok = right, true
			return pushgen.Stop
		}))
		if !probe.ok {
			return pushgen.Stop
		}
		return f.sink.Call(Pair[L, R]{First: left, Second: probe.value})
	}))

	if leftResult == pushgen.Complete || frame.rightResult == pushgen.Complete {
		g.done = true
		return pushgen.Complete
	}
	return pushgen.Stopped
}

func (g *ZipGen[L, R]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return pushgen.Advance[Pair[L, R]](g, n)
}
