package fd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dep(det, res []string) FunctionalDependency {
	return MustDependency(Attrs(det...), Attrs(res...))
}

func TestNewDependencyRejectsEmptySides(t *testing.T) {
	_, err := NewDependency(AttributeSet{}, Attrs("a"))
	assert.ErrorIs(t, err, ErrInvalidDependency)

	_, err = NewDependency(Attrs("a"), AttributeSet{})
	assert.ErrorIs(t, err, ErrInvalidDependency)

	d, err := NewDependency(Attrs("a", "b"), Attrs("c"))
	require.NoError(t, err)
	assert.Equal(t, "{a, b} → {c}", d.String())
}

func TestDependencyEquality(t *testing.T) {
	assert.True(t, dep([]string{"a", "b"}, []string{"c"}).Equal(dep([]string{"b", "a"}, []string{"c"})))
	assert.False(t, dep([]string{"a"}, []string{"c"}).Equal(dep([]string{"a"}, []string{"b"})))
	assert.True(t, dep([]string{"a", "b"}, []string{"a"}).IsTrivial())
}

func TestFDSetCollapsesDuplicates(t *testing.T) {
	s := NewFDSet(
		dep([]string{"a"}, []string{"b", "c"}),
		dep([]string{"a"}, []string{"c", "b"}),
		dep([]string{"b"}, []string{"c"}),
	)
	assert.Equal(t, 2, s.Len())

	s2 := s.Add(dep([]string{"b"}, []string{"c"}))
	assert.Equal(t, 2, s2.Len())

	s3 := s.Remove(dep([]string{"b"}, []string{"c"}))
	assert.Equal(t, 1, s3.Len())
	assert.Equal(t, 2, s.Len(), "Remove must not modify the receiver")

	assert.True(t, s.Attributes().Equal(Attrs("a", "b", "c")))
	assert.Equal(t, "{{a} → {b, c}, {b} → {c}}", s.String())
}

func TestNewSchemaValidation(t *testing.T) {
	tests := []struct {
		name    string
		attrs   AttributeSet
		deps    FDSet
		wantErr error
	}{
		{
			name:  "valid",
			attrs: Attrs("a", "b"),
			deps:  NewFDSet(dep([]string{"a"}, []string{"b"})),
		},
		{
			name:  "no dependencies",
			attrs: Attrs("x", "y"),
		},
		{
			name:    "no attributes",
			attrs:   AttributeSet{},
			wantErr: ErrEmptySchema,
		},
		{
			name:    "unknown resultant",
			attrs:   Attrs("a", "b"),
			deps:    NewFDSet(dep([]string{"a"}, []string{"c"})),
			wantErr: ErrInvalidDependency,
		},
		{
			name:    "unknown determinant",
			attrs:   Attrs("a", "b"),
			deps:    NewFDSet(dep([]string{"z"}, []string{"a"})),
			wantErr: ErrInvalidDependency,
		},
		{
			name:    "empty side built without constructor",
			attrs:   Attrs("a"),
			deps:    NewFDSet(FunctionalDependency{Determinant: Attrs("a")}),
			wantErr: ErrInvalidDependency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema(tt.attrs, tt.deps)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, s.Attributes().IsEmpty(), "failed construction must not leak a schema")
				return
			}
			require.NoError(t, err)
			assert.True(t, s.Attributes().Equal(tt.attrs))
		})
	}
}

func TestDependencyErrorNamesMissingAttributes(t *testing.T) {
	_, err := NewSchema(Attrs("a"), NewFDSet(dep([]string{"a"}, []string{"b", "c"})))

	var depErr *DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, []Attribute{"b", "c"}, depErr.Missing)
	assert.Contains(t, err.Error(), "b, c")
}

func TestRelationString(t *testing.T) {
	r, err := NewRelation("r", Attrs("a", "b", "c"), NewFDSet(
		dep([]string{"a"}, []string{"b"}),
		dep([]string{"b"}, []string{"c"}),
	))
	require.NoError(t, err)
	assert.Equal(t, "Relation: r(a, b, c), FD: {{a} → {b}, {b} → {c}}", r.String())

	_, err = NewRelation("bad", AttributeSet{}, FDSet{})
	assert.ErrorIs(t, err, ErrEmptySchema)
	assert.Contains(t, err.Error(), "relation bad")
}

func TestSchemaString(t *testing.T) {
	s, err := NewSchema(Attrs("a", "b", "c"), NewFDSet(dep([]string{"a"}, []string{"b"})))
	require.NoError(t, err)
	assert.Equal(t, "(a, b, c), FD: {{a} → {b}}", s.String())

	children, err := s.Decompose()
	require.NoError(t, err)
	assert.Equal(t, "[(a, b), FD: {{a} → {b}} (a, c), FD: {}]", fmt.Sprintf("%v", children))
}
