// Package profile builds the ordered profile template shown on the card and
// flattens it into display lines.
package profile

import (
	"strings"
)

// Value is the content of a template entry: either a Scalar or a Group.
type Value interface {
	isValue()
}

// Scalar is a leaf value, already in its display form.
type Scalar string

// Group is an ordered list of entries nested under one key.
type Group []Entry

func (Scalar) isValue() {}
func (Group) isValue() {}

// Entry is a single key of the template and its value.
type Entry struct {
	Key   string
	Value Value
}

// Template is the ordered list of top-level sections of a profile.
type Template []Entry

// String renders a group inline, used when a group ends up where a leaf is expected.
func (g Group) String() string {
	parts := make([]string, 0, len(g))
	for _, e := range g {
		parts = append(parts, e.Key+": "+display(e.Value))
	}
	return strings.Join(parts, ", ")
}

func (g Group) index(key string) int {
	for i, e := range g {
		if e.Key == key {
			return i
		}
	}
	return -1
}

func (g Group) clone() Group {
	if g == nil {
		return nil
	}
	out := make(Group, len(g))
	for i, e := range g {
		out[i] = Entry{Key: e.Key, Value: cloneValue(e.Value)}
	}
	return out
}

func cloneValue(v Value) Value {
	if g, ok := v.(Group); ok {
		return g.clone()
	}
	return v
}

// Lookup returns the value stored under path.
func (t Template) Lookup(path ...string) (Value, bool) {
	var current Value = Group(t)
	for _, key := range path {
		g, ok := current.(Group)
		if !ok {
			return nil, false
		}
		i := g.index(key)
		if i < 0 {
			return nil, false
		}
		current = g[i].Value
	}
	return current, len(path) > 0
}

// With returns a deep copy of t with value stored under path. Missing keys are
// appended in order; an existing scalar on the way is replaced by a group.
// t itself is never modified.
func (t Template) With(value Value, path ...string) Template {
	if len(path) == 0 {
		return Template(Group(t).clone())
	}
	return Template(setPath(Group(t), value, path))
}

func setPath(entries Group, value Value, path []string) Group {
	out := entries.clone()
	key := path[0]
	i := out.index(key)

	var next Value
	if len(path) == 1 {
		next = cloneValue(value)
	} else {
		var child Group
		if i >= 0 {
			child, _ = out[i].Value.(Group)
		}
		next = setPath(child, value, path[1:])
	}

	if i < 0 {
		return append(out, Entry{Key: key, Value: next})
	}
	out[i].Value = next
	return out
}
