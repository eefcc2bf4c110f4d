package formatter

import (
	"fmt"
	"io"

	"github.com/tordrt/fdnorm/internal/analyze"
)

// Formatter renders analysis reports
type Formatter interface {
	Format(reports []analyze.Report) error
}

// New returns the single-stream formatter for format
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case FormatText:
		return NewTextFormatter(w), nil
	case FormatMarkdown:
		return NewMarkdownFormatter(w), nil
	}
	return nil, fmt.Errorf("invalid format: %s (must be 'text' or 'markdown')", format)
}

// errWriter keeps the first write error and skips every later write
type errWriter struct {
	w   io.Writer
	err error
}

func newErrWriter(w io.Writer) *errWriter {
	if ew, ok := w.(*errWriter); ok {
		return ew
	}
	return &errWriter{w: w}
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
