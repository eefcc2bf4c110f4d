package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/fdnorm/internal/analyze"
)

// MarkdownFormatter formats reports as markdown
type MarkdownFormatter struct {
	writer *errWriter
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: newErrWriter(w)}
}

// Format writes the reports in markdown format
func (f *MarkdownFormatter) Format(reports []analyze.Report) error {
	_, _ = fmt.Fprintln(f.writer, "# Normalization Report")
	_, _ = fmt.Fprintln(f.writer)

	for _, report := range reports {
		if err := f.FormatReport(report); err != nil {
			return err
		}
	}
	return nil
}

// FormatReport formats a single report (exported for use by multifile formatter).
// It returns the first write error.
func (f *MarkdownFormatter) FormatReport(r analyze.Report) error {
	_, _ = fmt.Fprintf(f.writer, "## %s\n\n", r.Relation.Name)

	_, _ = fmt.Fprintf(f.writer, "**Attributes:** %s\n\n", r.Relation.Schema.Attributes().Join(", "))
	_, _ = fmt.Fprintf(f.writer, "**Candidate key:** %s\n\n", r.Key.Join(", "))

	_, _ = fmt.Fprintln(f.writer, "### Dependencies")
	_, _ = fmt.Fprintln(f.writer)
	for _, d := range r.Relation.Schema.Dependencies().Dependencies() {
		_, _ = fmt.Fprintf(f.writer, "- %s\n", d)
	}
	if r.Relation.Schema.Dependencies().Len() == 0 {
		_, _ = fmt.Fprintln(f.writer, "- none")
	}
	_, _ = fmt.Fprintln(f.writer)

	_, _ = fmt.Fprintln(f.writer, "### Minimal cover")
	_, _ = fmt.Fprintln(f.writer)
	for _, d := range r.Cover.Dependencies() {
		_, _ = fmt.Fprintf(f.writer, "- %s\n", d)
	}
	if r.Cover.Len() == 0 {
		_, _ = fmt.Fprintln(f.writer, "- none")
	}
	_, _ = fmt.Fprintln(f.writer)

	_, _ = fmt.Fprintln(f.writer, "### 3NF decomposition")
	_, _ = fmt.Fprintln(f.writer)
	if r.AlreadyNormalized() {
		_, _ = fmt.Fprintln(f.writer, "Already in third normal form.")
		_, _ = fmt.Fprintln(f.writer)
		return f.writer.err
	}
	_, _ = fmt.Fprintln(f.writer, "| Relation | Attributes | Dependencies |")
	_, _ = fmt.Fprintln(f.writer, "|---|---|---|")
	for _, child := range r.Decomposition {
		deps := "-"
		if child.Schema.Dependencies().Len() > 0 {
			deps = child.Schema.Dependencies().String()
		}
		_, _ = fmt.Fprintf(f.writer, "| %s | %s | %s |\n",
			child.Name, child.Schema.Attributes().Join(", "), deps)
	}
	_, _ = fmt.Fprintln(f.writer)
	return f.writer.err
}
