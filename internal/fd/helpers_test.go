package fd

import (
	"math/rand"
)

var universe = []string{"a", "b", "c", "d", "e", "f"}

// randomDependencies builds a reproducible dependency set over universe.
func randomDependencies(seed int64) (AttributeSet, FDSet) {
	rng := rand.New(rand.NewSource(seed))
	attrs := Attrs(universe...)

	n := rng.Intn(7)
	deps := make([]FunctionalDependency, 0, n)
	for i := 0; i < n; i++ {
		deps = append(deps, MustDependency(pick(rng, 1+rng.Intn(3)), pick(rng, 1+rng.Intn(3))))
	}
	return attrs, NewFDSet(deps...)
}

// randomSubsets returns n reproducible non-empty subsets of attrs.
func randomSubsets(seed int64, attrs AttributeSet, n int) []AttributeSet {
	rng := rand.New(rand.NewSource(seed * 7919))
	out := make([]AttributeSet, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, pick(rng, 1+rng.Intn(attrs.Len())))
	}
	return append(out, attrs)
}

func pick(rng *rand.Rand, k int) AttributeSet {
	perm := rng.Perm(len(universe))
	names := make([]string, k)
	for i := 0; i < k; i++ {
		names[i] = universe[perm[i]]
	}
	return Attrs(names...)
}

func studentsRelation() Relation {
	r, err := NewRelation("students",
		Attrs("id", "name", "academic_year", "faculty", "faculty_location", "subject_name", "grade", "teacher"),
		NewFDSet(
			dep([]string{"id"}, []string{"name", "academic_year", "faculty", "faculty_location", "subject_name", "grade", "teacher"}),
			dep([]string{"faculty"}, []string{"faculty_location"}),
			dep([]string{"subject_name"}, []string{"teacher"}),
		),
	)
	if err != nil {
		panic(err)
	}
	return r
}
