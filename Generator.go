package pushgen

// Generator define a push-style value producer.
// Instead of the consumer pulling values one by one,
// the generator drives values into a consumer Sink and only returns
// when the consumer asked it to stop or when it ran out of values.
// This inverts the classic iterator control flow,
// and allows adaptor chains to execute as plain nested calls within a single Run invocation.
//
// Run delivers values to the sink for as long as the sink answers MoreValues.
// When the sink answers Stop, Run must return Stopped without delivering further values,
// and the generator must keep enough state to continue with the next undelivered value
// on a later Run call.
// When the underlying values are exhausted, Run returns Complete.
// Complete is terminal, a generator must tolerate being run again after completion,
// in which case it returns Complete immediately without calling the sink.
type Generator[V any] interface {
	// Run the generator, delivering values to the sink until the sink requests Stop
	// or the generator runs out of values.
	Run(sink Sink[V]) GeneratorResult
	// TryAdvance skips the next n values without delivering them.
	// It reports how many values were actually skipped, and whether the generator
	// was stopped or ran to completion while doing so.
	// Implementations with random access may jump their cursor directly,
	// everything else can rely on the Advance helper.
	TryAdvance(n int) (int, GeneratorResult)
}

// ReverseGenerator is a generator that can also produce values from the back
// of the same logical sequence.
//
// Forward and backward consumption share a single completion boundary:
// the generator is Complete once the two ends meet,
// and the meeting element is delivered only once.
type ReverseGenerator[V any] interface {
	Generator[V]
	// RunBack behaves as Run, but delivers values from the back towards the front.
	RunBack(sink Sink[V]) GeneratorResult
	// TryAdvanceBack behaves as TryAdvance, but skips values at the back.
	TryAdvanceBack(n int) (int, GeneratorResult)
}

// Advance implements the default TryAdvance behaviour:
// it runs the generator with a counting sink that requests Stop
// once n values have passed.
//
// It returns the number of values actually skipped.
// The result is Stopped when the counting sink cut the run short,
// and Complete when the generator exhausted itself before reaching n.
func Advance[V any](g Generator[V], n int) (int, GeneratorResult) {
	if n <= 0 {
		return 0, Stopped
	}
	left := n
	result := g.Run(SinkFunc(func(V) ValueResult {
		left--
		if left == 0 {
			return Stop
		}
		return MoreValues
	}))
	return n - left, result
}

// AdvanceBack implements the default TryAdvanceBack behaviour,
// skipping values at the back of the sequence.
func AdvanceBack[V any](g ReverseGenerator[V], n int) (int, GeneratorResult) {
	if n <= 0 {
		return 0, Stopped
	}
	left := n
	result := g.RunBack(SinkFunc(func(V) ValueResult {
		left--
		if left == 0 {
			return Stop
		}
		return MoreValues
	}))
	return n - left, result
}
