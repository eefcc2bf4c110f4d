package fd

import (
	"fmt"
	"strings"
)

// FunctionalDependency is a constraint Determinant → Resultant.
type FunctionalDependency struct {
	Determinant AttributeSet
	Resultant   AttributeSet
}

// NewDependency builds a dependency, rejecting empty sides.
func NewDependency(determinant, resultant AttributeSet) (FunctionalDependency, error) {
	if determinant.IsEmpty() {
		return FunctionalDependency{}, fmt.Errorf("%w: empty determinant", ErrInvalidDependency)
	}
	if resultant.IsEmpty() {
		return FunctionalDependency{}, fmt.Errorf("%w: empty resultant", ErrInvalidDependency)
	}
	return FunctionalDependency{Determinant: determinant, Resultant: resultant}, nil
}

// MustDependency is like NewDependency but panics on error. Intended for
// literals in tests and examples.
func MustDependency(determinant, resultant AttributeSet) FunctionalDependency {
	dep, err := NewDependency(determinant, resultant)
	if err != nil {
		panic(err)
	}
	return dep
}

// Equal reports whether both sides are set-equal.
func (d FunctionalDependency) Equal(o FunctionalDependency) bool {
	return d.Determinant.Equal(o.Determinant) && d.Resultant.Equal(o.Resultant)
}

// IsTrivial reports whether the resultant is contained in the determinant.
func (d FunctionalDependency) IsTrivial() bool {
	return d.Resultant.IsSubsetOf(d.Determinant)
}

// Attributes returns every attribute mentioned on either side.
func (d FunctionalDependency) Attributes() AttributeSet {
	return d.Determinant.Union(d.Resultant)
}

func (d FunctionalDependency) String() string {
	return d.Determinant.String() + " → " + d.Resultant.String()
}

// FDSet is an immutable collection of dependencies with duplicates collapsed.
// Order is kept for deterministic iteration and output only.
type FDSet struct {
	deps []FunctionalDependency
}

// NewFDSet builds a set from deps, dropping duplicates.
func NewFDSet(deps ...FunctionalDependency) FDSet {
	var s FDSet
	for _, d := range deps {
		if !s.Contains(d) {
			s.deps = append(s.deps, d)
		}
	}
	return s
}

// Len returns the number of dependencies.
func (s FDSet) Len() int {
	return len(s.deps)
}

// Dependencies returns the members in order. The slice is a copy.
func (s FDSet) Dependencies() []FunctionalDependency {
	out := make([]FunctionalDependency, len(s.deps))
	copy(out, s.deps)
	return out
}

// Contains reports whether an equal dependency is in the set.
func (s FDSet) Contains(d FunctionalDependency) bool {
	for _, m := range s.deps {
		if m.Equal(d) {
			return true
		}
	}
	return false
}

// Add returns a new set with d appended, unless already present.
func (s FDSet) Add(d FunctionalDependency) FDSet {
	return NewFDSet(append(s.Dependencies(), d)...)
}

// Remove returns a new set without d.
func (s FDSet) Remove(d FunctionalDependency) FDSet {
	kept := make([]FunctionalDependency, 0, len(s.deps))
	for _, m := range s.deps {
		if !m.Equal(d) {
			kept = append(kept, m)
		}
	}
	return FDSet{deps: kept}
}

// Attributes returns every attribute mentioned by any member.
func (s FDSet) Attributes() AttributeSet {
	var all AttributeSet
	for _, d := range s.deps {
		all = all.Union(d.Attributes())
	}
	return all
}

func (s FDSet) String() string {
	parts := make([]string, len(s.deps))
	for i, d := range s.deps {
		parts[i] = d.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
