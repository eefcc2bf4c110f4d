package schema

import (
	"fmt"

	"github.com/tordrt/fdnorm/internal/fd"
)

// Keys returns the column lists that identify a row: the primary key first,
// then every unique index whose columns are all NOT NULL. A unique index over
// a nullable column admits several NULL rows, so it implies nothing.
func (t *Table) Keys() [][]string {
	var keys [][]string
	if len(t.PrimaryKey) > 0 {
		keys = append(keys, t.PrimaryKey)
	}

	for _, idx := range t.Indexes {
		if !idx.IsUnique || len(idx.Columns) == 0 {
			continue
		}
		nullable := false
		for _, name := range idx.Columns {
			if col := t.Column(name); col == nil || col.Nullable {
				nullable = true
				break
			}
		}
		if !nullable {
			keys = append(keys, idx.Columns)
		}
	}
	return keys
}

// KeyDependencies returns key → every other column for each key of the table.
// Keys that already cover every column yield nothing.
func (t *Table) KeyDependencies() fd.FDSet {
	all := t.Attributes()

	var deps []fd.FunctionalDependency
	for _, key := range t.Keys() {
		det := fd.Attrs(key...)
		rest := all.Difference(det)
		if rest.IsEmpty() {
			continue
		}
		deps = append(deps, fd.FunctionalDependency{Determinant: det, Resultant: rest})
	}
	return fd.NewFDSet(deps...)
}

// Attributes returns the table's columns in ordinal order
func (t *Table) Attributes() fd.AttributeSet {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return fd.Attrs(names...)
}

// ToRelation converts the table into a validated relation whose
// dependencies are the ones implied by its keys
func (t *Table) ToRelation() (fd.Relation, error) {
	r, err := fd.NewRelation(t.Name, t.Attributes(), t.KeyDependencies())
	if err != nil {
		return fd.Relation{}, fmt.Errorf("failed to convert table %s: %w", t.Name, err)
	}
	return r, nil
}

// ToRelations converts every table in the schema
func (s *Schema) ToRelations() ([]fd.Relation, error) {
	relations := make([]fd.Relation, 0, len(s.Tables))
	for i := range s.Tables {
		r, err := s.Tables[i].ToRelation()
		if err != nil {
			return nil, err
		}
		relations = append(relations, r)
	}
	return relations, nil
}
