package pushgen

// Sink is the consumer side of a generator run.
// It is a small callable value that either wraps a plain function,
// or a (context, function) pair where the function receives the context
// together with the value.
//
// The bound form exists so that an adaptor can pass its own state through
// a child generator without the child being generic over the consumer:
// no matter how deep an adaptor chain is, every layer talks to the same
// Sink[V] shape. The context is held as a plain interface value, so the
// erasure stays within the type system.
//
// A bound context is used under exclusive, synchronous ownership only:
// it must not be retained after Call returns and must not be shared
// between goroutines.
type Sink[V any] struct {
	free  func(V) ValueResult
	ctx   any
	bound func(ctx any, v V) ValueResult
}

// SinkFunc wraps a plain function as a Sink.
func SinkFunc[V any](fn func(V) ValueResult) Sink[V] {
	return Sink[V]{free: fn}
}

// Bind pairs a context value with a function that receives the context and the value.
// The returned sink dispatches each Call to fn with the bound context.
func Bind[Ctx, V any](ctx *Ctx, fn func(*Ctx, V) ValueResult) Sink[V] {
	return Sink[V]{
		ctx: ctx,
		bound: func(c any, v V) ValueResult {
			return fn(c.(*Ctx), v)
		},
	}
}

// Call delivers a single value to the consumer and returns its verdict.
func (s Sink[V]) Call(v V) ValueResult {
	if s.bound != nil {
		return s.bound(s.ctx, v)
	}
	return s.free(v)
}
