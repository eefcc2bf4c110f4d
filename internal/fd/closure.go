package fd

// Closure returns the set of attributes derivable from x under f.
func Closure(x AttributeSet, f FDSet) AttributeSet {
	return closureOf(x, f.deps)
}

// closureOf iterates full passes over deps until a pass adds nothing.
// A single pass is not enough: with A→B listed after B→C, closure(A) needs
// the second pass to reach C.
func closureOf(x AttributeSet, deps []FunctionalDependency) AttributeSet {
	result := x
	for changed := true; changed; {
		changed = false
		for _, d := range deps {
			if d.Determinant.IsSubsetOf(result) && !d.Resultant.IsSubsetOf(result) {
				result = result.Union(d.Resultant)
				changed = true
			}
		}
	}
	return result
}

// Implies reports whether d follows from f.
func Implies(f FDSet, d FunctionalDependency) bool {
	return d.Resultant.IsSubsetOf(Closure(d.Determinant, f))
}

// Equivalent reports whether f1 and f2 have the same logical consequences:
// every member of each set is implied by the other.
func Equivalent(f1, f2 FDSet) bool {
	return covers(f1, f2) && covers(f2, f1)
}

// covers reports whether every member of g is implied by f.
func covers(f, g FDSet) bool {
	for _, d := range g.deps {
		if !Implies(f, d) {
			return false
		}
	}
	return true
}

// IsSuperkey reports whether the closure of k under f spans attrs.
func IsSuperkey(k, attrs AttributeSet, f FDSet) bool {
	return attrs.IsSubsetOf(Closure(k, f))
}
