package midware

import (
	"errors"
	"fmt"

	"github.com/mwkit/midware/keypath"
	"github.com/mwkit/midware/tracing"
)

// ErrMalformedMiddleware reports a two-phase unit that did not suspend
// exactly once: its function either returned without calling yield or
// called yield a second time.
var ErrMalformedMiddleware = errors.New("midware: malformed middleware")

// Yield hands control to the inner layer. Its argument is the value the
// unit's before phase produced; its results are the inner layer's final
// context and error.
type Yield func(v any) (Context, error)

// SuspendFunc is a two-phase computation. It runs its before phase, calls
// yield exactly once, runs its after phase on yield's result and returns
// the final context for the layer above.
type SuspendFunc func(ctx Context, yield Yield) (Context, error)

// MakeMiddleware builds a Middleware from a two-phase function.
//
// When the unit runs, fn is started with the incoming context. The value it
// yields is stored into the context at path when path is non-empty;
// otherwise, a yielded map replaces the context handed inward and any other
// value leaves it untouched. The inner handler runs exactly once, inside
// the yield call, and fn resumes with its result.
//
// A non-empty name makes the unit visible to the active trace sink; an
// empty name hides it. fn must suspend exactly once or the unit fails with
// [ErrMalformedMiddleware].
func MakeMiddleware(name string, fn SuspendFunc, path []string) Middleware {
	return func(next Handler) Handler {
		return func(ctx Context) (Context, error) {
			sink := sinkFor(ctx, name)
			if sink != nil {
				sink.Inward(name)
				defer sink.Outward(name)
			}

			suspensions := 0
			yield := func(v any) (Context, error) {
				suspensions++
				if suspensions > 1 {
					return nil, malformed(name, "resumed more than once")
				}
				inner := ctx
				if len(path) > 0 {
					if err := keypath.Set(ctx, path, v); err != nil {
						return nil, err
					}
				} else if c, ok := v.(map[string]any); ok && c != nil {
					// A replacement map must keep carrying the run's sink,
					// or units inward of it would go silent. The hidden
					// unit strips the entry from the final context.
					if s, ok := ctx[traceKey]; ok {
						c[traceKey] = s
					}
					inner = c
				}
				return next(inner)
			}

			out, err := fn(ctx, yield)
			switch {
			case suspensions > 1:
				return nil, malformed(name, "resumed more than once")
			case suspensions == 0 && err == nil:
				return nil, malformed(name, "never suspended")
			}
			return out, err
		}
	}
}

// Named attaches trace markers to an arbitrary middleware, for wrappers not
// built through [MakeMiddleware] or [MakeScoped].
func Named(name string, mw Middleware) Middleware {
	return func(next Handler) Handler {
		inner := mw(next)
		return func(ctx Context) (Context, error) {
			sink := sinkFor(ctx, name)
			if sink != nil {
				sink.Inward(name)
				defer sink.Outward(name)
			}
			return inner(ctx)
		}
	}
}

func malformed(name, detail string) error {
	if name == "" {
		return fmt.Errorf("%w: %s", ErrMalformedMiddleware, detail)
	}
	return fmt.Errorf("%w: %q %s", ErrMalformedMiddleware, name, detail)
}

// sinkFor returns the sink the current run stored in ctx, or nil when
// tracing is off or the unit is hidden.
func sinkFor(ctx Context, name string) tracing.Sink {
	if name == "" {
		return nil
	}
	s, _ := keypath.Get(ctx, tracePath).(tracing.Sink)
	return s
}
