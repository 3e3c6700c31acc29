package midware

import (
	"io"

	"github.com/mwkit/midware/tracing"
)

// Option configures a single [Run] invocation.
type Option func(*config)

// WithTrace enables tracing for this run using the default stdout sink.
func WithTrace() Option {
	return func(c *config) {
		c.trace = true
	}
}

// WithTraceSink enables tracing for this run, emitting to the given sink.
func WithTraceSink(s tracing.Sink) Option {
	return func(c *config) {
		c.trace = true
		c.sink = s
	}
}

// WithTraceWriter enables tracing for this run, emitting marker lines to w.
func WithTraceWriter(w io.Writer) Option {
	return func(c *config) {
		c.trace = true
		c.sink = tracing.NewWriter(w)
	}
}
