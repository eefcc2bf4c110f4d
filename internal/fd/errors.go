package fd

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDependency is returned when a dependency has an empty side or
	// refers to attributes outside its schema.
	ErrInvalidDependency = errors.New("invalid functional dependency")

	// ErrEmptySchema is returned when a schema is built with no attributes.
	ErrEmptySchema = errors.New("schema has no attributes")
)

// DependencyError reports a dependency that mentions attributes missing from
// the schema it was added to.
type DependencyError struct {
	Dependency FunctionalDependency
	Missing    []Attribute
}

func (e *DependencyError) Error() string {
	missing := make([]string, len(e.Missing))
	for i, a := range e.Missing {
		missing[i] = string(a)
	}
	return fmt.Sprintf("%s: %s references unknown attributes %s",
		ErrInvalidDependency, e.Dependency, strings.Join(missing, ", "))
}

func (e *DependencyError) Unwrap() error {
	return ErrInvalidDependency
}
