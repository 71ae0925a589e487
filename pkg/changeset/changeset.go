// Package changeset computes minimal partial-update payloads.
//
// Diff works on loosely shaped records (map[string]any, e.g. decoded JSON form
// values). Entities with a fixed shape build a parallel optional record
// field by field with Field, Slice and Ptr, then flatten it with Collect.
package changeset

import (
	"slices"
	"sort"
)

// ChangeSet maps an attribute name to its new value
type ChangeSet map[string]any

// IsEmpty reports whether nothing changed. Callers skip the update entirely.
func (c ChangeSet) IsEmpty() bool {
	return len(c) == 0
}

// Has reports whether key changed
func (c ChangeSet) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Keys returns the changed attribute names in ascending order
func (c ChangeSet) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Diff returns the attributes of current whose value differs structurally
// from original. Only current's keys are visited: a key present in original
// alone is never reported as removed.
func Diff(original, current map[string]any) ChangeSet {
	cs := make(ChangeSet)
	for k, cur := range current {
		if Equal(original[k], cur) {
			continue
		}
		cs[k] = cur
	}
	return cs
}

// Field returns &cur when cur differs from old, nil otherwise
func Field[T comparable](old, cur T) *T {
	if old == cur {
		return nil
	}
	return &cur
}

// Slice returns &cur when the slices differ element-wise. nil and empty are equal.
func Slice[T comparable](old, cur []T) *[]T {
	if slices.Equal(old, cur) {
		return nil
	}
	return &cur
}

// Ptr compares optional values by pointee. The result is non-nil when they
// differ; its pointee is cur, which may itself be nil to clear the value.
func Ptr[T comparable](old, cur *T) **T {
	switch {
	case old == nil && cur == nil:
		return nil
	case old != nil && cur != nil && *old == *cur:
		return nil
	}
	return &cur
}

// Collect adds *v under name when v is set
func Collect[T any](cs ChangeSet, name string, v *T) {
	if v == nil {
		return
	}
	cs[name] = *v
}
