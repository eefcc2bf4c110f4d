// Package fd implements functional dependency reasoning over relation
// schemas: attribute closure, equivalence of dependency sets, canonical covers,
// candidate keys and third normal form synthesis.
package fd

import (
	"sort"
	"strings"
)

// Attribute is the name of a relation column. Names are compared exactly.
type Attribute string

// AttributeSet is an immutable set of attributes.
//
// Membership and equality ignore order. The order in which attributes were
// first added is kept so that rendering and iteration are deterministic.
type AttributeSet struct {
	order []Attribute
	index map[Attribute]struct{}
}

// NewAttributeSet builds a set from attrs, dropping duplicates.
func NewAttributeSet(attrs ...Attribute) AttributeSet {
	s := AttributeSet{
		order: make([]Attribute, 0, len(attrs)),
		index: make(map[Attribute]struct{}, len(attrs)),
	}
	for _, a := range attrs {
		if _, ok := s.index[a]; ok {
			continue
		}
		s.index[a] = struct{}{}
		s.order = append(s.order, a)
	}
	return s
}

// Attrs is a shorthand for building a set from plain strings.
func Attrs(names ...string) AttributeSet {
	attrs := make([]Attribute, len(names))
	for i, n := range names {
		attrs[i] = Attribute(n)
	}
	return NewAttributeSet(attrs...)
}

// Len returns the number of attributes in the set.
func (s AttributeSet) Len() int {
	return len(s.order)
}

// IsEmpty reports whether the set has no attributes.
func (s AttributeSet) IsEmpty() bool {
	return len(s.order) == 0
}

// Contains reports whether a is a member of the set.
func (s AttributeSet) Contains(a Attribute) bool {
	_, ok := s.index[a]
	return ok
}

// Attributes returns the members in insertion order. The slice is a copy.
func (s AttributeSet) Attributes() []Attribute {
	out := make([]Attribute, len(s.order))
	copy(out, s.order)
	return out
}

// Sorted returns the members in lexical order.
func (s AttributeSet) Sorted() []Attribute {
	out := s.Attributes()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsSubsetOf reports whether every member of s is also in o.
func (s AttributeSet) IsSubsetOf(o AttributeSet) bool {
	if s.Len() > o.Len() {
		return false
	}
	for _, a := range s.order {
		if !o.Contains(a) {
			return false
		}
	}
	return true
}

// Equal reports set equality.
func (s AttributeSet) Equal(o AttributeSet) bool {
	return s.Len() == o.Len() && s.IsSubsetOf(o)
}

// Union returns s ∪ o. Members of s keep their position; new members of o
// follow in o's order.
func (s AttributeSet) Union(o AttributeSet) AttributeSet {
	merged := make([]Attribute, 0, s.Len()+o.Len())
	merged = append(merged, s.order...)
	merged = append(merged, o.order...)
	return NewAttributeSet(merged...)
}

// Difference returns the members of s that are not in o.
func (s AttributeSet) Difference(o AttributeSet) AttributeSet {
	kept := make([]Attribute, 0, s.Len())
	for _, a := range s.order {
		if !o.Contains(a) {
			kept = append(kept, a)
		}
	}
	return NewAttributeSet(kept...)
}

// Without returns s with a removed.
func (s AttributeSet) Without(a Attribute) AttributeSet {
	return s.Difference(NewAttributeSet(a))
}

// key is an order-independent identity used for grouping.
func (s AttributeSet) key() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, a := range sorted {
		parts[i] = string(a)
	}
	return strings.Join(parts, "\x00")
}

// Join renders the members in insertion order separated by sep.
func (s AttributeSet) Join(sep string) string {
	parts := make([]string, len(s.order))
	for i, a := range s.order {
		parts[i] = string(a)
	}
	return strings.Join(parts, sep)
}

func (s AttributeSet) String() string {
	return "{" + s.Join(", ") + "}"
}
