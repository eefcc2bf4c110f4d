package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tordrt/fdnorm/internal/analyze"
)

// Output formats
const (
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// MultiFileFormatter writes one file per relation plus an overview
type MultiFileFormatter struct {
	OutputDir    string
	OutputFormat string // "text" or "markdown"
}

// NewMultiFileFormatter creates a new multi-file formatter
func NewMultiFileFormatter(outputDir, format string) *MultiFileFormatter {
	return &MultiFileFormatter{
		OutputDir:    outputDir,
		OutputFormat: format,
	}
}

// Format writes the reports to multiple files
func (f *MultiFileFormatter) Format(reports []analyze.Report) error {
	if err := os.MkdirAll(f.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := f.writeOverview(reports); err != nil {
		return fmt.Errorf("failed to write overview: %w", err)
	}

	for _, report := range reports {
		if err := f.writeReportFile(report); err != nil {
			return fmt.Errorf("failed to write file for %s: %w", report.Relation.Name, err)
		}
	}

	return nil
}

func (f *MultiFileFormatter) writeOverview(reports []analyze.Report) error {
	filename := filepath.Join(f.OutputDir, "_overview"+f.getFileExtension())

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()
	out := newErrWriter(file)

	sorted := make([]analyze.Report, len(reports))
	copy(sorted, reports)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Relation.Name < sorted[j].Relation.Name
	})

	if f.OutputFormat == FormatMarkdown {
		_, _ = fmt.Fprintf(out, "# Normalization Overview\n\n")
		_, _ = fmt.Fprintf(out, "Each relation has a corresponding file: `<relation_name>%s`\n\n", f.getFileExtension())
		_, _ = fmt.Fprintf(out, "## Relations\n\n")
		for _, r := range sorted {
			_, _ = fmt.Fprintf(out, "- **%s** (key: %s) %s\n", r.Relation.Name, r.Key.Join(", "), summary(r))
		}
		return out.err
	}

	_, _ = fmt.Fprintf(out, "NORMALIZATION OVERVIEW\n")
	_, _ = fmt.Fprintf(out, "Each relation has a file: <relation_name>%s\n\n", f.getFileExtension())
	for _, r := range sorted {
		_, _ = fmt.Fprintf(out, "%s (key: %s) %s\n", r.Relation.Name, r.Key.Join(","), summary(r))
	}
	return out.err
}

func summary(r analyze.Report) string {
	if r.AlreadyNormalized() {
		return "already in 3NF"
	}
	return fmt.Sprintf("splits into %d relations", len(r.Decomposition))
}

func (f *MultiFileFormatter) writeReportFile(r analyze.Report) error {
	filename := filepath.Join(f.OutputDir, r.Relation.Name+f.getFileExtension())

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if f.OutputFormat == FormatMarkdown {
		return NewMarkdownFormatter(file).FormatReport(r)
	}
	return NewTextFormatter(file).Format([]analyze.Report{r})
}

func (f *MultiFileFormatter) getFileExtension() string {
	if f.OutputFormat == FormatMarkdown {
		return ".md"
	}
	return ".txt"
}
