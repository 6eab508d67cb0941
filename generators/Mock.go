package generators

import (
	"github.com/adamluzsi/pushgen"
)

// NewMock wraps a generator so that individual contract methods can be stubbed out in tests.
func NewMock[T any](g pushgen.Generator[T]) *Mock[T] {
	return &Mock[T]{
		Generator:      g,
		StubRun:        g.Run,
		StubTryAdvance: g.TryAdvance,
	}
}

type Mock[T any] struct {
	Generator      pushgen.Generator[T]
	StubRun        func(pushgen.Sink[T]) pushgen.GeneratorResult
	StubTryAdvance func(int) (int, pushgen.GeneratorResult)
}

// wrapper

func (m *Mock[T]) Run(sink pushgen.Sink[T]) pushgen.GeneratorResult {
	return m.StubRun(sink)
}

func (m *Mock[T]) TryAdvance(n int) (int, pushgen.GeneratorResult) {
	return m.StubTryAdvance(n)
}

// Reseting stubs

func (m *Mock[T]) ResetRun() {
	m.StubRun = m.Generator.Run
}

func (m *Mock[T]) ResetTryAdvance() {
	m.StubTryAdvance = m.Generator.TryAdvance
}
