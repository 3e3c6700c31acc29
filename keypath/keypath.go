// Package keypath provides pure helpers for reading and writing values in
// nested map[string]any structures addressed by an ordered key path.
package keypath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTypeMismatch is returned when a write walks through an existing value
// that is not a map. Writes never silently overwrite such a value.
var ErrTypeMismatch = errors.New("keypath: value in path is not a map")

// ErrEmptyPath is returned when a write is attempted with no keys.
var ErrEmptyPath = errors.New("keypath: empty path")

// Get returns the value at path, or nil when any segment is missing or an
// intermediate value is not a map. It never mutates m.
func Get(m map[string]any, path []string) any {
	return GetOr(m, path, nil)
}

// GetOr is like [Get] but returns def instead of nil when the path does not
// resolve.
func GetOr(m map[string]any, path []string, def any) any {
	if len(path) == 0 {
		return def
	}
	cur := m
	for _, k := range path[:len(path)-1] {
		next, ok := cur[k]
		if !ok {
			return def
		}
		nm, ok := next.(map[string]any)
		if !ok {
			return def
		}
		cur = nm
	}
	v, ok := cur[path[len(path)-1]]
	if !ok {
		return def
	}
	return v
}

// Set assigns v at path, creating empty intermediate maps in place as
// needed, and returns ErrTypeMismatch when an existing intermediate value
// is not a map.
func Set(m map[string]any, path []string, v any) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	cur := m
	for i, k := range path[:len(path)-1] {
		next, ok := cur[k]
		if !ok {
			child := map[string]any{}
			cur[k] = child
			cur = child
			continue
		}
		nm, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q", ErrTypeMismatch, strings.Join(path[:i+1], "."))
		}
		cur = nm
	}
	cur[path[len(path)-1]] = v
	return nil
}

// Remove deletes the value at path. It is a no-op when any segment is
// missing or an intermediate value is not a map.
func Remove(m map[string]any, path []string) {
	if len(path) == 0 {
		return
	}
	cur := m
	for _, k := range path[:len(path)-1] {
		next, ok := cur[k]
		if !ok {
			return
		}
		nm, ok := next.(map[string]any)
		if !ok {
			return
		}
		cur = nm
	}
	delete(cur, path[len(path)-1])
}

// Update reads the current value at path (nil when absent), applies f and
// writes the result back via [Set]. Extra arguments to f are closed over by
// the caller.
func Update(m map[string]any, path []string, f func(old any) any) error {
	return Set(m, path, f(Get(m, path)))
}
