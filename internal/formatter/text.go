package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/fdnorm/internal/analyze"
	"github.com/tordrt/fdnorm/internal/fd"
)

// TextFormatter formats reports as compact text
type TextFormatter struct {
	writer *errWriter
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: newErrWriter(w)}
}

// Format writes every report, separated by blank lines. It returns the first
// write error.
func (f *TextFormatter) Format(reports []analyze.Report) error {
	for i, report := range reports {
		if i > 0 {
			_, _ = fmt.Fprintln(f.writer)
		}
		f.formatReport(report)
	}
	return f.writer.err
}

func (f *TextFormatter) formatReport(r analyze.Report) {
	_, _ = fmt.Fprintln(f.writer, r.Relation)
	_, _ = fmt.Fprintf(f.writer, "  KEY: %s\n", r.Key)

	_, _ = fmt.Fprintln(f.writer, "  MINIMAL COVER:")
	if r.Cover.Len() == 0 {
		_, _ = fmt.Fprintln(f.writer, "    (none)")
	}
	for _, d := range r.Cover.Dependencies() {
		_, _ = fmt.Fprintf(f.writer, "    %s\n", d)
	}

	if r.AlreadyNormalized() {
		_, _ = fmt.Fprintln(f.writer, "  3NF: already normalized")
		return
	}
	_, _ = fmt.Fprintln(f.writer, "  3NF DECOMPOSITION:")
	for _, child := range r.Decomposition {
		_, _ = fmt.Fprintf(f.writer, "    %s\n", formatChild(child))
	}
}

// formatChild renders name(a, b) followed by the child's dependencies
func formatChild(r fd.Relation) string {
	attrs := r.Schema.Attributes().Join(", ")
	if r.Schema.Dependencies().Len() == 0 {
		return fmt.Sprintf("%s(%s)", r.Name, attrs)
	}
	return fmt.Sprintf("%s(%s) FD: %s", r.Name, attrs, r.Schema.Dependencies())
}
