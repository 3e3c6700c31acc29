package tracing

import "github.com/prometheus/client_golang/prometheus"

// CounterSink counts middleware boundary events in a Prometheus counter
// labelled by direction and middleware name. Register its Collector with
// the registry serving your metrics endpoint.
type CounterSink struct {
	events *prometheus.CounterVec
}

// NewCounterSink returns a CounterSink with an unregistered counter.
func NewCounterSink() *CounterSink {
	return &CounterSink{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "midware",
			Name:      "trace_events_total",
			Help:      "Middleware boundary events by direction and middleware name.",
		}, []string{"direction", "middleware"}),
	}
}

// Collector exposes the underlying counter for registration.
func (s *CounterSink) Collector() prometheus.Collector {
	return s.events
}

// Inward counts an entry event for name.
func (s *CounterSink) Inward(name string) {
	s.events.WithLabelValues("inward", name).Inc()
}

// Outward counts an exit event for name.
func (s *CounterSink) Outward(name string) {
	s.events.WithLabelValues("outward", name).Inc()
}
