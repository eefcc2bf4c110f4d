package fd

import "fmt"

// RelationSchema pairs an attribute set with the dependencies that hold over
// it. Values are only produced by NewSchema, so every dependency refers to
// attributes of the schema.
type RelationSchema struct {
	attributes   AttributeSet
	dependencies FDSet
}

// NewSchema validates and builds a schema. It fails with ErrEmptySchema when
// attributes is empty and with ErrInvalidDependency (as a *DependencyError
// for unknown attributes) when a dependency does not fit the schema.
func NewSchema(attributes AttributeSet, dependencies FDSet) (RelationSchema, error) {
	if attributes.IsEmpty() {
		return RelationSchema{}, ErrEmptySchema
	}
	for _, d := range dependencies.deps {
		if d.Determinant.IsEmpty() || d.Resultant.IsEmpty() {
			return RelationSchema{}, fmt.Errorf("%w: %s has an empty side", ErrInvalidDependency, d)
		}
		if missing := d.Attributes().Difference(attributes); !missing.IsEmpty() {
			return RelationSchema{}, &DependencyError{Dependency: d, Missing: missing.Attributes()}
		}
	}
	return RelationSchema{attributes: attributes, dependencies: dependencies}, nil
}

// Attributes returns the schema's attribute set.
func (r RelationSchema) Attributes() AttributeSet {
	return r.attributes
}

// Dependencies returns the schema's dependency set.
func (r RelationSchema) Dependencies() FDSet {
	return r.dependencies
}

// Equal reports whether both schemas have equal attributes and the same
// dependency members.
func (r RelationSchema) Equal(o RelationSchema) bool {
	if !r.attributes.Equal(o.attributes) || r.dependencies.Len() != o.dependencies.Len() {
		return false
	}
	for _, d := range r.dependencies.deps {
		if !o.dependencies.Contains(d) {
			return false
		}
	}
	return true
}

// String renders the schema as (a, b), FD: {...}.
func (r RelationSchema) String() string {
	return fmt.Sprintf("(%s), FD: %s", r.attributes.Join(", "), r.dependencies)
}

// Relation is a named schema. The name is carried through every operation
// untouched.
type Relation struct {
	Name   string
	Schema RelationSchema
}

// NewRelation validates the schema and names it.
func NewRelation(name string, attributes AttributeSet, dependencies FDSet) (Relation, error) {
	s, err := NewSchema(attributes, dependencies)
	if err != nil {
		return Relation{}, fmt.Errorf("relation %s: %w", name, err)
	}
	return Relation{Name: name, Schema: s}, nil
}

func (r Relation) String() string {
	return fmt.Sprintf("Relation: %s%s", r.Name, r.Schema)
}
