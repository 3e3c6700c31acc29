package midware

// Compose combines fns left to right: Compose(f, g, h)(x) == h(g(f(x))).
// With no arguments it returns the identity function. It is the ordering
// primitive behind [ComposeChain].
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, f := range fns {
			v = f(v)
		}
		return v
	}
}

// ComposeFrom is Compose with a first function of a different input type:
// ComposeFrom(f, g, h)(x) == h(g(f(x))) where f maps A to B and the rest
// map B to B.
func ComposeFrom[A, B any](first func(A) B, rest ...func(B) B) func(A) B {
	return func(a A) B {
		v := first(a)
		for _, f := range rest {
			v = f(v)
		}
		return v
	}
}
