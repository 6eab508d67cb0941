package pushgen

// ValueResult is the verdict a consumer gives back to the generator after each delivered value.
type ValueResult int8

const (
	// Stop requests that the generator stop producing values.
	// The value that triggered the Stop counts as delivered and must not be delivered again.
	Stop ValueResult = iota
	// MoreValues requests more values from the generator.
	MoreValues
)

func (vr ValueResult) String() string {
	switch vr {
	case Stop:
		return `Stop`
	case MoreValues:
		return `MoreValues`
	default:
		return `ValueResult(invalid)`
	}
}

// GeneratorResult is the outcome of a single generator run.
type GeneratorResult int8

const (
	// Stopped is returned from Generator.Run when the consumer requested Stop,
	// or when the generator paused on its own.
	// A Stopped generator holds enough state to resume from the next undelivered value.
	Stopped GeneratorResult = iota
	// Complete is returned from Generator.Run when all values have been delivered.
	// Complete is terminal: every later run must return Complete again without delivering anything.
	Complete
)

func (gr GeneratorResult) String() string {
	switch gr {
	case Stopped:
		return `Stopped`
	case Complete:
		return `Complete`
	default:
		return `GeneratorResult(invalid)`
	}
}
