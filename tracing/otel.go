package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SpanSink bridges middleware boundaries to OpenTelemetry: Inward starts a
// span, Outward ends it. Because events are strictly nested, open spans form
// a stack and each new span is parented on the one below it.
//
// A SpanSink holds per-run state and must not be shared between concurrent
// runs; create one per [midware.Run] call.
type SpanSink struct {
	// TracerProvider supplies the Tracer used to create spans. When nil the
	// global otel.GetTracerProvider() is used.
	TracerProvider trace.TracerProvider

	stack []spanFrame
}

type spanFrame struct {
	ctx  context.Context
	span trace.Span
}

// NewSpanSink returns a SpanSink creating spans from tp. A nil tp selects
// the global provider.
func NewSpanSink(tp trace.TracerProvider) *SpanSink {
	return &SpanSink{TracerProvider: tp}
}

func (s *SpanSink) tracer() trace.Tracer {
	tp := s.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer("github.com/mwkit/midware/tracing")
}

// Inward starts a span named after the middleware.
func (s *SpanSink) Inward(name string) {
	parent := context.Background()
	if n := len(s.stack); n > 0 {
		parent = s.stack[n-1].ctx
	}
	ctx, span := s.tracer().Start(parent, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("middleware.name", name)),
	)
	s.stack = append(s.stack, spanFrame{ctx: ctx, span: span})
}

// Outward ends the innermost open span. An Outward without a matching
// Inward is ignored.
func (s *SpanSink) Outward(name string) {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.stack[n-1].span.End()
	s.stack = s.stack[:n-1]
}
