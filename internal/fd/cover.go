package fd

// MinimalCover returns a canonical cover of f: an equivalent set whose members
// have single-attribute resultants, no extraneous determinant attributes and
// no redundant members.
//
// The phases run in order, each to a fixpoint. Candidates are always tried in
// the set's iteration order, so identical input gives identical output.
func MinimalCover(f FDSet) FDSet {
	cover := splitResultants(f)
	cover = reduceDeterminants(cover)
	cover = dropRedundant(cover)
	return NewFDSet(cover...)
}

// MinimalCover returns the canonical cover of the schema's dependencies.
func (r RelationSchema) MinimalCover() FDSet {
	return MinimalCover(r.dependencies)
}

// splitResultants rewrites X → {A1..An} as X → A1, ..., X → An. Parts with
// Ai in X hold in every relation and are dropped.
func splitResultants(f FDSet) []FunctionalDependency {
	var split []FunctionalDependency
	for _, d := range f.deps {
		for _, a := range d.Resultant.order {
			part := FunctionalDependency{
				Determinant: d.Determinant,
				Resultant:   NewAttributeSet(a),
			}
			if part.IsTrivial() {
				continue
			}
			split = append(split, part)
		}
	}
	return NewFDSet(split...).deps
}

// reduceDeterminants drops every attribute B from a determinant X of X → A
// when A is still derivable from X - {B} under the current cover. A removal
// can make another attribute removable, so passes repeat until one changes
// nothing.
func reduceDeterminants(cover []FunctionalDependency) []FunctionalDependency {
	current := make([]FunctionalDependency, len(cover))
	copy(current, cover)

	for changed := true; changed; {
		changed = false
		for i := range current {
			for _, b := range current[i].Determinant.Attributes() {
				det := current[i].Determinant
				if det.Len() == 1 {
					break
				}
				reduced := det.Without(b)
				if current[i].Resultant.IsSubsetOf(closureOf(reduced, current)) {
					current[i] = FunctionalDependency{Determinant: reduced, Resultant: current[i].Resultant}
					changed = true
				}
			}
		}
	}
	return NewFDSet(current...).deps
}

// dropRedundant removes X → A when A is derivable from X without it,
// one member at a time, rescanning after each removal.
func dropRedundant(cover []FunctionalDependency) []FunctionalDependency {
	current := make([]FunctionalDependency, len(cover))
	copy(current, cover)

	for changed := true; changed; {
		changed = false
		for i, d := range current {
			rest := make([]FunctionalDependency, 0, len(current)-1)
			rest = append(rest, current[:i]...)
			rest = append(rest, current[i+1:]...)
			if d.Resultant.IsSubsetOf(closureOf(d.Determinant, rest)) {
				current = rest
				changed = true
				break
			}
		}
	}
	return current
}
