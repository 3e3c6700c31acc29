package midware

import (
	"github.com/mwkit/midware/keypath"
	"github.com/mwkit/midware/tracing"
)

// traceKey is the reserved context key under which an active run stores its
// trace sink. It is set by the hidden unit injected by [Run] and removed
// before the final context is returned.
const traceKey = "midware.trace"

var tracePath = []string{traceKey}

// ComposeChain wraps h with the given middleware. The first-listed
// middleware becomes the outermost wrapper: its before phase runs first and
// its after phase runs last.
func ComposeChain(h Handler, mws ...Middleware) Handler {
	fns := make([]func(Handler) Handler, 0, len(mws))
	for i := len(mws) - 1; i >= 0; i-- {
		fns = append(fns, mws[i])
	}
	return Compose(fns...)(h)
}

// Run composes mws around h and invokes the chain with ctx, returning the
// final context. Failures from the handler or any middleware phase
// propagate unchanged; Run performs no catching or recovery.
//
// When tracing is requested via options, a hidden unit is injected as the
// new outermost layer. It carries the sink inside the context for the
// duration of this call only, so concurrent runs do not interfere.
func Run(ctx Context, h Handler, mws []Middleware, opts ...Option) (Context, error) {
	cfg := newConfig(opts...)
	if ctx == nil {
		ctx = Context{}
	}

	chain := mws
	if cfg.trace {
		sink := cfg.sink
		if sink == nil {
			sink = defaultSink()
		}
		chain = make([]Middleware, 0, len(mws)+1)
		chain = append(chain, traceMiddleware(sink))
		chain = append(chain, mws...)
	}

	return ComposeChain(h, chain...)(ctx)
}

// RunEmpty is Run starting from an empty context.
func RunEmpty(h Handler, mws []Middleware, opts ...Option) (Context, error) {
	return Run(Context{}, h, mws, opts...)
}

// traceMiddleware is the hidden outermost unit that scopes a sink to one
// run. It never appears in its own trace.
func traceMiddleware(sink tracing.Sink) Middleware {
	return MakeMiddleware("", func(ctx Context, yield Yield) (Context, error) {
		if err := keypath.Set(ctx, tracePath, sink); err != nil {
			return nil, err
		}
		// Deferred so a panic unwinding through the chain cannot leave the
		// sink behind in the caller's map.
		defer keypath.Remove(ctx, tracePath)
		out, err := yield(nil)
		if out != nil {
			keypath.Remove(out, tracePath)
		}
		return out, err
	}, nil)
}
