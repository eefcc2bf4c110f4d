package fd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAttributeSetDeduplicates(t *testing.T) {
	s := Attrs("b", "a", "b", "c", "a")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []Attribute{"b", "a", "c"}, s.Attributes())
	assert.Equal(t, []Attribute{"a", "b", "c"}, s.Sorted())
	assert.Equal(t, "{b, a, c}", s.String())
}

func TestAttributeSetIsCaseSensitive(t *testing.T) {
	s := Attrs("Name", "name", " name")
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Contains("NAME"))
}

func TestAttributeSetOperations(t *testing.T) {
	ab := Attrs("a", "b")
	bc := Attrs("b", "c")

	tests := []struct {
		name string
		got  AttributeSet
		want AttributeSet
	}{
		{name: "union", got: ab.Union(bc), want: Attrs("a", "b", "c")},
		{name: "difference", got: ab.Difference(bc), want: Attrs("a")},
		{name: "without", got: ab.Without("a"), want: Attrs("b")},
		{name: "without missing", got: ab.Without("z"), want: ab},
		{name: "union with empty", got: ab.Union(AttributeSet{}), want: ab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.Equal(tt.want), "got %s, want %s", tt.got, tt.want)
		})
	}
}

func TestAttributeSetOperationsDoNotMutate(t *testing.T) {
	ab := Attrs("a", "b")
	_ = ab.Union(Attrs("c"))
	_ = ab.Without("a")

	assert.Equal(t, []Attribute{"a", "b"}, ab.Attributes())
}

func TestAttributeSetSubsetAndEquality(t *testing.T) {
	assert.True(t, Attrs("a").IsSubsetOf(Attrs("a", "b")))
	assert.False(t, Attrs("a", "c").IsSubsetOf(Attrs("a", "b")))
	assert.True(t, AttributeSet{}.IsSubsetOf(Attrs("a")))
	assert.True(t, Attrs("a", "b").Equal(Attrs("b", "a")))
	assert.False(t, Attrs("a").Equal(Attrs("a", "b")))
	assert.True(t, AttributeSet{}.IsEmpty())
}
