package fd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinimalKey(t *testing.T) {
	tests := []struct {
		name  string
		attrs AttributeSet
		f     FDSet
		want  AttributeSet
	}{
		{
			name:  "no dependencies keeps everything",
			attrs: Attrs("x", "y"),
			f:     FDSet{},
			want:  Attrs("x", "y"),
		},
		{
			name:  "undetermined attribute joins the key",
			attrs: Attrs("a", "b", "c", "d"),
			f: NewFDSet(
				dep([]string{"a"}, []string{"b"}),
				dep([]string{"b"}, []string{"c"}),
			),
			want: Attrs("a", "d"),
		},
		{
			name:  "removal order picks among several keys",
			attrs: Attrs("a", "b"),
			f: NewFDSet(
				dep([]string{"a"}, []string{"b"}),
				dep([]string{"b"}, []string{"a"}),
			),
			want: Attrs("b"),
		},
		{
			name:  "composite key",
			attrs: Attrs("student", "course", "grade"),
			f:     NewFDSet(dep([]string{"student", "course"}, []string{"grade"})),
			want:  Attrs("student", "course"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinimalKey(tt.attrs, tt.f)
			assert.True(t, got.Equal(tt.want), "MinimalKey = %s, want %s", got, tt.want)
		})
	}
}

func TestMinimalKeyStudents(t *testing.T) {
	r := studentsRelation()
	assert.True(t, r.Schema.MinimalKey().Equal(Attrs("id")))
}

func TestMinimalKeyProperties(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		attrs, f := randomDependencies(seed)
		key := MinimalKey(attrs, f)

		assert.True(t, Closure(key, f).Equal(attrs), "seed %d: %s is not a superkey", seed, key)
		for _, a := range key.Attributes() {
			assert.False(t, Closure(key.Without(a), f).Equal(attrs),
				"seed %d: %s is not minimal, %s can go", seed, key, a)
		}
	}
}
