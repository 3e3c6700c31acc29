package tracing

import (
	"bytes"
	"testing"
)

func TestWriterFormats(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf)

	s.Inward("abc")
	if buf.String() != "abc--->\n" {
		t.Fatalf("inward = %q, want %q", buf.String(), "abc--->\n")
	}

	buf.Reset()
	s.Outward("xyz")
	if buf.String() != "<---xyz\n" {
		t.Fatalf("outward = %q, want %q", buf.String(), "<---xyz\n")
	}
}

type recordingSink struct {
	events []string
}

func (r *recordingSink) Inward(name string)  { r.events = append(r.events, "in:"+name) }
func (r *recordingSink) Outward(name string) { r.events = append(r.events, "out:"+name) }

func TestMulti(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{}
	m := Multi(a, b)

	m.Inward("X")
	m.Outward("X")

	for _, r := range []*recordingSink{a, b} {
		if len(r.events) != 2 || r.events[0] != "in:X" || r.events[1] != "out:X" {
			t.Fatalf("fan-out events = %v", r.events)
		}
	}
}
