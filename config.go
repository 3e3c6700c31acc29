package midware

import "github.com/mwkit/midware/tracing"

// config holds the per-run configuration assembled via functional options.
type config struct {
	trace bool
	sink  tracing.Sink
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
