// Package tracing defines the trace sink consumed by midware chains and
// ships sinks for plain writers, OpenTelemetry spans, Prometheus counters
// and zerolog events.
package tracing

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink receives one event per middleware boundary. Inward fires when
// execution enters a named unit, Outward when it leaves. Events arriving at
// a single sink are strictly paired and nested.
type Sink interface {
	Inward(name string)
	Outward(name string)
}

// Writer is a Sink that emits one literal line per event: "<name>--->" on
// the way in and "<---<name>" on the way out. It is safe for use from
// multiple runs sharing the sink.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Stdout returns a Writer emitting to standard output.
func Stdout() *Writer {
	return NewWriter(os.Stdout)
}

// Inward writes the entry marker for name.
func (s *Writer) Inward(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s--->\n", name)
}

// Outward writes the exit marker for name.
func (s *Writer) Outward(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "<---%s\n", name)
}

type multi []Sink

// Multi fans every event out to all the given sinks, in order.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Inward(name string) {
	for _, s := range m {
		s.Inward(name)
	}
}

func (m multi) Outward(name string) {
	for _, s := range m {
		s.Outward(name)
	}
}
