package midware

import "github.com/mwkit/midware/tracing"

// defaultSink is used when tracing is enabled without an explicit sink.
func defaultSink() tracing.Sink {
	return tracing.Stdout()
}
