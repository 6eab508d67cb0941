/*

Package pushgen provides push-style processing of in-memory sequences.

The classic Go iteration pattern is pull based:
the consumer asks for the next value, the producer hands one over, and the consumer decides when to stop asking.
Every adaptor layered on top of such an iterator adds one more pull-dispatch per value.

pushgen turns this around.
A Generator owns the production loop and pushes values into a consumer callback (a Sink),
and the consumer only signals whether it wants more.
A chain of adaptors therefore executes as directly nested function calls inside a single Run invocation,
instead of a chain of per-value pull requests.

	data := []int{1, 2, 3, 4, 5}
	generators.Pipe[int](generators.Slice(data)).
		Filter(func(n int) bool { return n%2 == 0 }).
		ForEach(process)

The price of the inversion is that stopping becomes a protocol instead of simply not calling Next again.
The Sink answers each value with MoreValues or Stop,
and a Run invocation answers with Stopped (a resumable pause) or Complete (a terminal exhaustion).
Every generator in this module can be re-run after a pause and continues with the next undelivered value,
and every generator tolerates being re-run after completion.

The repository is structured in the same spirit as my other research projects:
this root package holds only the contract (Generator, ReverseGenerator, Sink and the two result enums),
while the implementations live in sub packages.

	generators	sources and adaptors (Slice, FromFunc, Map, Filter, Chain, Zip, Flatten, Take, Skip, ...)
	contracts	reusable test suite that verifies the generator protocol for any implementation
	boltgen		a generator over a bolt bucket cursor, as an example of adapting a foreign sequence
	fixtures	random test data helpers

*/
package pushgen
