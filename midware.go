// Package midware provides minimal, composable middleware primitives around
// a shared context map, without imposing a framework. A middleware wraps a
// terminal [Handler] with a before/after pair; [Run] composes an ordered
// list of middleware around a handler and drives it with an initial context.
package midware

// Context is the mutable nested key-value map threaded through a chain.
// There is no fixed schema. A middleware's after phase may return a
// different map than the one it received; callers must always use the
// returned value.
type Context = map[string]any

// Handler is the minimal unit of work that middlewares wrap.
type Handler func(Context) (Context, error)

// Middleware transforms a Handler, allowing pre/post behavior composition.
type Middleware func(Handler) Handler

// Identity is a Handler that returns its input unchanged.
func Identity(ctx Context) (Context, error) {
	return ctx, nil
}
