package midware

import "github.com/mwkit/midware/keypath"

// Scoped is an acquire/release pair adapted into a middleware: Acquire runs
// before the inner call and Release runs after it on every exit path,
// including an inner failure or panic.
type Scoped interface {
	// Acquire produces the scoped value for one pass through the chain.
	Acquire(ctx Context) (any, error)

	// Release disposes of the value. err is the inner handler's failure. It
	// is nil when the handler succeeded, when the handler never ran, and
	// when a panic is unwinding through the unit — Release implementations
	// must not read a nil err as proof of success.
	Release(v any, err error) error
}

// MakeScoped builds a Middleware from a Scoped resource. The acquired value
// is stored into the context at path when path is non-empty. A handler
// failure is returned after Release completes and always wins over a
// Release failure; a Release failure surfaces only when the handler
// succeeded.
func MakeScoped(name string, res Scoped, path []string) Middleware {
	return func(next Handler) Handler {
		return func(ctx Context) (Context, error) {
			sink := sinkFor(ctx, name)
			if sink != nil {
				sink.Inward(name)
				defer sink.Outward(name)
			}

			v, err := res.Acquire(ctx)
			if err != nil {
				return nil, err
			}

			released := false
			defer func() {
				// Unwinding from a panic in the inner call.
				if !released {
					_ = res.Release(v, nil)
				}
			}()

			if len(path) > 0 {
				if serr := keypath.Set(ctx, path, v); serr != nil {
					released = true
					_ = res.Release(v, serr)
					return nil, serr
				}
			}

			out, herr := next(ctx)
			released = true
			rerr := res.Release(v, herr)
			if herr != nil {
				return nil, herr
			}
			if rerr != nil {
				return nil, rerr
			}
			return out, nil
		}
	}
}
