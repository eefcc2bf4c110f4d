package fd

import "fmt"

// Decompose splits a schema into third normal form by synthesis.
//
// The minimal cover is grouped by determinant, one child per distinct
// determinant in first-seen order. If no child contains a candidate key of the
// parent, a key-only child with no dependencies is appended. The children
// together cover every parent attribute and every cover member lives in
// exactly one child.
func Decompose(r RelationSchema) ([]RelationSchema, error) {
	cover := r.MinimalCover()

	type group struct {
		determinant AttributeSet
		deps        []FunctionalDependency
	}
	var groups []*group
	byDeterminant := make(map[string]*group)
	for _, d := range cover.deps {
		k := d.Determinant.key()
		g, ok := byDeterminant[k]
		if !ok {
			g = &group{determinant: d.Determinant}
			byDeterminant[k] = g
			groups = append(groups, g)
		}
		g.deps = append(g.deps, d)
	}

	children := make([]RelationSchema, 0, len(groups)+1)
	for _, g := range groups {
		attrs := g.determinant
		for _, d := range g.deps {
			attrs = attrs.Union(d.Resultant)
		}
		child, err := NewSchema(attrs, NewFDSet(g.deps...))
		if err != nil {
			return nil, fmt.Errorf("synthesize %s: %w", g.determinant, err)
		}
		children = append(children, child)
	}

	key := MinimalKey(r.attributes, cover)
	for _, c := range children {
		if key.IsSubsetOf(c.attributes) {
			return children, nil
		}
	}

	keyChild, err := NewSchema(key, FDSet{})
	if err != nil {
		return nil, fmt.Errorf("synthesize key %s: %w", key, err)
	}
	return append(children, keyChild), nil
}

// Decompose is the schema method form of Decompose.
func (r RelationSchema) Decompose() ([]RelationSchema, error) {
	return Decompose(r)
}

// DecomposeRelation decomposes r.Schema and gives every child r's name.
func DecomposeRelation(r Relation) ([]Relation, error) {
	schemas, err := Decompose(r.Schema)
	if err != nil {
		return nil, fmt.Errorf("relation %s: %w", r.Name, err)
	}
	out := make([]Relation, len(schemas))
	for i, s := range schemas {
		out[i] = Relation{Name: r.Name, Schema: s}
	}
	return out, nil
}
