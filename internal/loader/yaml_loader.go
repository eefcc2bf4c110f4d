// Package loader reads relation definitions from YAML documents.
//
// A document lists relations with their attributes and dependencies:
//
//	relations:
//	  - name: students
//	    attributes: [id, name, faculty, faculty_location]
//	    dependencies:
//	      - id -> name, faculty
//	      - faculty -> faculty_location
package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tordrt/fdnorm/internal/fd"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a set of relations
type Document struct {
	Relations []RelationEntry `yaml:"relations" validate:"required,min=1,dive"`
}

// RelationEntry describes one relation
type RelationEntry struct {
	Name         string   `yaml:"name" validate:"required"`
	Attributes   []string `yaml:"attributes" validate:"required,min=1,dive,required"`
	Dependencies []string `yaml:"dependencies" validate:"dive,required"`
}

// dependencies-only documents may omit attributes
type overlayDocument struct {
	Relations []overlayEntry `yaml:"relations" validate:"required,min=1,dive"`
}

type overlayEntry struct {
	Name         string   `yaml:"name" validate:"required"`
	Dependencies []string `yaml:"dependencies" validate:"required,min=1,dive,required"`
}

var validate = validator.New()

// LoadFile reads and converts every relation in a YAML file
func LoadFile(filename string) ([]fd.Relation, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// Load decodes a document and converts every relation, validating each one
func Load(r io.Reader) ([]fd.Relation, error) {
	var doc Document
	if err := decode(r, &doc); err != nil {
		return nil, err
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid schema document: %w", err)
	}

	relations := make([]fd.Relation, 0, len(doc.Relations))
	seen := make(map[string]bool, len(doc.Relations))
	for _, entry := range doc.Relations {
		if seen[entry.Name] {
			return nil, fmt.Errorf("relation %s defined more than once", entry.Name)
		}
		seen[entry.Name] = true

		rel, err := entry.Relation()
		if err != nil {
			return nil, err
		}
		relations = append(relations, rel)
	}
	return relations, nil
}

// Relation converts the entry into a validated relation
func (s RelationEntry) Relation() (fd.Relation, error) {
	deps, err := ParseDependencies(s.Dependencies)
	if err != nil {
		return fd.Relation{}, fmt.Errorf("relation %s: %w", s.Name, err)
	}
	return fd.NewRelation(s.Name, fd.Attrs(s.Attributes...), deps)
}

// LoadDependencyFile reads a document whose relations carry only names and
// dependencies, keyed by relation name
func LoadDependencyFile(filename string) (map[string]fd.FDSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading dependency file: %w", err)
	}

	var doc overlayDocument
	if err := decode(bytes.NewReader(data), &doc); err != nil {
		return nil, err
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid dependency document: %w", err)
	}

	out := make(map[string]fd.FDSet, len(doc.Relations))
	for _, entry := range doc.Relations {
		deps, err := ParseDependencies(entry.Dependencies)
		if err != nil {
			return nil, fmt.Errorf("relation %s: %w", entry.Name, err)
		}
		for _, d := range deps.Dependencies() {
			out[entry.Name] = out[entry.Name].Add(d)
		}
	}
	return out, nil
}

// Merge adds extra dependencies to the relations of the same name. Each
// merged relation is validated again; relations without extras are returned
// unchanged.
func Merge(relations []fd.Relation, extra map[string]fd.FDSet) ([]fd.Relation, error) {
	known := make(map[string]bool, len(relations))
	out := make([]fd.Relation, 0, len(relations))
	for _, r := range relations {
		known[r.Name] = true
		deps, ok := extra[r.Name]
		if !ok {
			out = append(out, r)
			continue
		}

		merged := r.Schema.Dependencies()
		for _, d := range deps.Dependencies() {
			merged = merged.Add(d)
		}
		m, err := fd.NewRelation(r.Name, r.Schema.Attributes(), merged)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	for name := range extra {
		if !known[name] {
			return nil, fmt.Errorf("dependencies given for unknown relation %s", name)
		}
	}
	return out, nil
}

func decode(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			return fmt.Errorf("unmarshalling YAML: empty document")
		}
		return fmt.Errorf("unmarshalling YAML: %w", err)
	}
	return nil
}

// ParseDependencies parses each entry with ParseDependency
func ParseDependencies(lines []string) (fd.FDSet, error) {
	deps := make([]fd.FunctionalDependency, 0, len(lines))
	for _, line := range lines {
		d, err := ParseDependency(line)
		if err != nil {
			return fd.FDSet{}, err
		}
		deps = append(deps, d)
	}
	return fd.NewFDSet(deps...), nil
}

// ParseDependency parses "a, b -> c". The arrow may also be written "→".
func ParseDependency(s string) (fd.FunctionalDependency, error) {
	normalized := strings.ReplaceAll(s, "→", "->")
	left, right, ok := strings.Cut(normalized, "->")
	if !ok || strings.Contains(right, "->") {
		return fd.FunctionalDependency{}, fmt.Errorf("%w: %q must contain exactly one arrow", fd.ErrInvalidDependency, s)
	}

	d, err := fd.NewDependency(fd.Attrs(ParseList(left)...), fd.Attrs(ParseList(right)...))
	if err != nil {
		return fd.FunctionalDependency{}, fmt.Errorf("%q: %w", s, err)
	}
	return d, nil
}

// ParseList splits a comma separated list, trimming spaces and dropping
// empty entries
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
