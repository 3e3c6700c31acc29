package keypath

import (
	"errors"
	"reflect"
	"testing"
)

func nested() map[string]any {
	return map[string]any{
		"a": map[string]any{"b": 0},
		"c": 1,
	}
}

func TestGet(t *testing.T) {
	m := nested()

	if got := Get(m, []string{"a", "b"}); got != 0 {
		t.Fatalf("Get(a.b) = %v, want 0", got)
	}
	if got := Get(m, []string{"c"}); got != 1 {
		t.Fatalf("Get(c) = %v, want 1", got)
	}
	if got := Get(m, []string{"a"}); !reflect.DeepEqual(got, map[string]any{"b": 0}) {
		t.Fatalf("Get(a) = %v, want map{b:0}", got)
	}

	if got := Get(m, []string{"a", "d"}); got != nil {
		t.Fatalf("Get(a.d) = %v, want nil", got)
	}
	if got := Get(m, []string{"d"}); got != nil {
		t.Fatalf("Get(d) = %v, want nil", got)
	}
	// Walking through a non-map value resolves to nothing.
	if got := Get(m, []string{"c", "d"}); got != nil {
		t.Fatalf("Get(c.d) = %v, want nil", got)
	}
}

func TestGetDoesNotMutate(t *testing.T) {
	m := nested()
	_ = Get(m, []string{"x", "y", "z"})
	if !reflect.DeepEqual(m, nested()) {
		t.Fatalf("Get mutated the map: %v", m)
	}
}

func TestGetOr(t *testing.T) {
	m := nested()

	if got := GetOr(m, []string{"a", "b"}, 42); got != 0 {
		t.Fatalf("GetOr(a.b) = %v, want 0", got)
	}
	if got := GetOr(m, []string{"a", "d"}, 42); got != 42 {
		t.Fatalf("GetOr(a.d) = %v, want 42", got)
	}
	if got := GetOr(m, []string{"c", "d"}, 42); got != 42 {
		t.Fatalf("GetOr(c.d) = %v, want 42", got)
	}
	if got := GetOr(m, nil, 42); got != 42 {
		t.Fatalf("GetOr(empty path) = %v, want 42", got)
	}
}

func TestSetRoundTrip(t *testing.T) {
	m := map[string]any{}

	if err := Set(m, []string{"a"}, 0); err != nil {
		t.Fatalf("Set(a): %v", err)
	}
	if got := Get(m, []string{"a"}); got != 0 {
		t.Fatalf("Get(a) = %v, want 0", got)
	}

	if err := Set(m, []string{"b", "c"}, 1); err != nil {
		t.Fatalf("Set(b.c): %v", err)
	}
	if got := Get(m, []string{"b", "c"}); got != 1 {
		t.Fatalf("Get(b.c) = %v, want 1", got)
	}
}

func TestSetTypeMismatch(t *testing.T) {
	m := map[string]any{"a": 0}

	err := Set(m, []string{"a", "b"}, 1)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Set through non-map: err = %v, want ErrTypeMismatch", err)
	}
	if m["a"] != 0 {
		t.Fatalf("failed Set overwrote value: %v", m)
	}
}

func TestSetEmptyPath(t *testing.T) {
	if err := Set(map[string]any{}, nil, 1); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("Set(empty path): err = %v, want ErrEmptyPath", err)
	}
}

func TestRemove(t *testing.T) {
	m := nested()

	Remove(m, []string{"a", "b"})
	if got := Get(m, []string{"a", "b"}); got != nil {
		t.Fatalf("Get after Remove = %v, want nil", got)
	}

	Remove(m, []string{"c"})
	if _, ok := m["c"]; ok {
		t.Fatal("Remove(c) left the key behind")
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	m := nested()
	Remove(m, []string{"x", "y"})
	Remove(m, []string{"c", "d"})
	if !reflect.DeepEqual(m, nested()) {
		t.Fatalf("Remove on absent path mutated the map: %v", m)
	}
}

func TestUpdate(t *testing.T) {
	m := map[string]any{"n": 1}

	inc := func(old any) any {
		if old == nil {
			return 1
		}
		return old.(int) + 1
	}

	if err := Update(m, []string{"n"}, inc); err != nil {
		t.Fatalf("Update(n): %v", err)
	}
	if m["n"] != 2 {
		t.Fatalf("Update(n) = %v, want 2", m["n"])
	}

	// Absent paths start from nil and get their levels created.
	if err := Update(m, []string{"deep", "n"}, inc); err != nil {
		t.Fatalf("Update(deep.n): %v", err)
	}
	if got := Get(m, []string{"deep", "n"}); got != 1 {
		t.Fatalf("Update(deep.n) = %v, want 1", got)
	}
}

func TestUpdateTypeMismatch(t *testing.T) {
	m := map[string]any{"n": 1}
	err := Update(m, []string{"n", "deep"}, func(any) any { return 0 })
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Update through non-map: err = %v, want ErrTypeMismatch", err)
	}
}
