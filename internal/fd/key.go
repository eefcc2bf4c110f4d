package fd

// MinimalKey returns one candidate key of attrs under f.
//
// Starting from the full attribute set, each attribute is dropped in order if
// the remainder still determines attrs; passes repeat until none is dropped.
// When several candidate keys exist the removal order picks which one.
func MinimalKey(attrs AttributeSet, f FDSet) AttributeSet {
	key := attrs
	for changed := true; changed; {
		changed = false
		for _, a := range key.Attributes() {
			candidate := key.Without(a)
			if candidate.IsEmpty() {
				continue
			}
			if IsSuperkey(candidate, attrs, f) {
				key = candidate
				changed = true
			}
		}
	}
	return key
}

// MinimalKey returns one candidate key of the schema.
func (r RelationSchema) MinimalKey() AttributeSet {
	return MinimalKey(r.attributes, r.dependencies)
}
