package contracts

import (
	"testing"

	"github.com/adamluzsi/pushgen"
	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"
)

// Generator is a reusable contract that verifies the run/stop/complete protocol
// of a pushgen.Generator implementation.
//
// Subject must return a fresh generator together with the exact values
// it is expected to deliver, in order.
// The contract consumes the generator, so Subject is called once per test case.
type Generator struct {
	Subject func(testing.TB) (pushgen.Generator[int], []int)
}

func (c Generator) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Generator) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}

func (c Generator) Spec(s *testcase.Spec) {
	s.Test(`an always-continue consumer receives every value in order, and the run is Complete`, func(t *testcase.T) {
		gen, expected := c.Subject(t)

		var values []int
		result := gen.Run(pushgen.SinkFunc(func(n int) pushgen.ValueResult {
			values = append(values, n)
			return pushgen.MoreValues
		}))

		require.Equal(t, pushgen.Complete, result)
		require.Equal(t, expected, values)
	})

	s.Test(`Complete is terminal, a completed generator never calls the sink again`, func(t *testcase.T) {
		gen, _ := c.Subject(t)

		for gen.Run(alwaysMore) == pushgen.Stopped {
		}

		for i := 0; i < 3; i++ {
			result := gen.Run(pushgen.SinkFunc(func(n int) pushgen.ValueResult {
				t.Fatalf(`no value expected after Complete, got %v`, n)
				return pushgen.Stop
			}))
			require.Equal(t, pushgen.Complete, result)
		}
	})

	s.Test(`a consumer Stop pauses the generator without losing or duplicating values`, func(t *testcase.T) {
		_, expected := c.Subject(t)

		for split := 0; split <= len(expected); split++ {
			gen, _ := c.Subject(t)

			var prefix []int
			result := gen.Run(pushgen.SinkFunc(func(n int) pushgen.ValueResult {
				prefix = append(prefix, n)
				if len(prefix) == split {
					return pushgen.Stop
				}
				return pushgen.MoreValues
			}))

			if result == pushgen.Complete {
				require.Equal(t, expected, prefix)
				continue
			}

			var suffix []int
			for gen.Run(pushgen.SinkFunc(func(n int) pushgen.ValueResult {
				suffix = append(suffix, n)
				return pushgen.MoreValues
			})) == pushgen.Stopped {
			}

			require.Equal(t, expected, append(prefix, suffix...),
				`prefix + suffix must equal the full sequence when stopping at value #%d`, split)
		}
	})

	s.Test(`TryAdvance skips exactly the requested amount while values remain`, func(t *testcase.T) {
		gen, expected := c.Subject(t)
		if len(expected) < 2 {
			t.Skip(`needs at least two values`)
		}

		advanced, result := gen.TryAdvance(1)
		require.Equal(t, 1, advanced)
		require.Equal(t, pushgen.Stopped, result)

		var values []int
		for gen.Run(pushgen.SinkFunc(func(n int) pushgen.ValueResult {
			values = append(values, n)
			return pushgen.MoreValues
		})) == pushgen.Stopped {
		}
		require.Equal(t, expected[1:], values)
	})

	s.Test(`TryAdvance past the end reports the remaining count and Complete`, func(t *testcase.T) {
		gen, expected := c.Subject(t)

		advanced, result := gen.TryAdvance(len(expected) + 1)
		require.Equal(t, len(expected), advanced)
		require.Equal(t, pushgen.Complete, result)
	})
}

var alwaysMore = pushgen.SinkFunc(func(int) pushgen.ValueResult {
	return pushgen.MoreValues
})
