package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tordrt/fdnorm"
	"github.com/tordrt/fdnorm/internal/config"
	"github.com/tordrt/fdnorm/internal/db"
	"github.com/tordrt/fdnorm/internal/loader"
	"go.uber.org/zap"
)

var (
	schemaFile     string
	dbURL          string
	mysqlURL       string
	sqlitePath     string
	depsFile       string
	tables         string
	excludeTables  string
	schemaName     string
	outputFile     string
	outputDir      string
	format         string
	workers        int
	verbose        bool
	relationName   string
	closureAttrs   string
	otherRelation  string
	logger         = zap.NewNop()
	successColor   = color.New(color.FgGreen)
	failureColor   = color.New(color.FgRed)
	highlightColor = color.New(color.FgCyan, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "fdnorm",
	Short: "Normalize relation schemas through their functional dependencies",
	Long: `fdnorm reads relation schemas from a YAML file or from a PostgreSQL, MySQL, or SQLite
database and reports, for each relation, a minimal cover of its functional dependencies,
a candidate key, and a dependency-preserving, lossless third normal form decomposition.

Database tables contribute the dependencies implied by their primary key and NOT NULL
unique indexes. Use --deps to add business rules the database cannot express.

Examples:
  fdnorm --file schema.yaml
  fdnorm --sqlite app.db --deps rules.yaml --format markdown
  fdnorm closure --file schema.yaml --relation students --attrs faculty
  fdnorm equivalent --file schema.yaml --relation a --other b
`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              run,
}

var closureCmd = &cobra.Command{
	Use:   "closure",
	Short: "Print the closure of a set of attributes within a relation",
	RunE:  runClosure,
}

var equivalentCmd = &cobra.Command{
	Use:   "equivalent",
	Short: "Check whether two relations have equivalent dependency sets",
	RunE:  runEquivalent,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&schemaFile, "file", "", "YAML schema file")
	flags.StringVar(&dbURL, "db-url", "", "Database URL (postgres://, mysql://, or sqlite://)")
	flags.StringVar(&mysqlURL, "mysql-url", "", "MySQL connection string")
	flags.StringVar(&sqlitePath, "sqlite", "", "SQLite database file path")
	flags.StringVar(&depsFile, "deps", "", "YAML file with extra dependencies per relation")
	flags.StringVarP(&tables, "tables", "t", "", "Specific tables or relations (comma-separated, optional)")
	flags.StringVarP(&schemaName, "schema", "s", "", "Database schema name (default: public for PostgreSQL)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")

	rootCmd.Flags().StringVar(&excludeTables, "exclude", "", "Relations to skip (comma-separated)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "Output directory for multi-file output")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or markdown")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Relations analyzed in parallel (default: one per CPU)")

	closureCmd.Flags().StringVarP(&relationName, "relation", "r", "", "Relation name")
	closureCmd.Flags().StringVarP(&closureAttrs, "attrs", "a", "", "Attributes to close (comma-separated)")
	_ = closureCmd.MarkFlagRequired("relation")
	_ = closureCmd.MarkFlagRequired("attrs")

	equivalentCmd.Flags().StringVarP(&relationName, "relation", "r", "", "First relation")
	equivalentCmd.Flags().StringVar(&otherRelation, "other", "", "Second relation")
	_ = equivalentCmd.MarkFlagRequired("relation")
	_ = equivalentCmd.MarkFlagRequired("other")

	rootCmd.AddCommand(closureCmd, equivalentCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logger = l
	}
	return config.LoadEnv(logger)
}

// resolveSource picks the single configured source, falling back to the
// environment
func resolveSource() (string, error) {
	var sources []string
	if schemaFile != "" {
		sources = append(sources, schemaFile)
	}
	if dbURL != "" {
		if !db.IsURL(dbURL) {
			return "", fmt.Errorf("--db-url must start with postgres://, postgresql://, mysql://, or sqlite://")
		}
		sources = append(sources, dbURL)
	}
	if mysqlURL != "" {
		sources = append(sources, withScheme("mysql://", mysqlURL))
	}
	if sqlitePath != "" {
		sources = append(sources, withScheme("sqlite://", sqlitePath))
	}

	switch len(sources) {
	case 1:
		return sources[0], nil
	case 0:
		if url := config.DatabaseURL(); url != "" {
			return url, nil
		}
		return "", fmt.Errorf("one of --file, --db-url, --mysql-url, or --sqlite must be specified (or set DATABASE_URL)")
	}
	return "", fmt.Errorf("only one of --file, --db-url, --mysql-url, or --sqlite can be specified")
}

func withScheme(scheme, s string) string {
	if strings.HasPrefix(s, scheme) {
		return s
	}
	return scheme + s
}

// parseTableList splits a comma separated flag value
func parseTableList(s string) []string {
	return loader.ParseList(s)
}

func options() *fdnorm.Options {
	return &fdnorm.Options{
		Tables:         parseTableList(tables),
		ExcludeTables:  parseTableList(excludeTables),
		SchemaName:     schemaName,
		DependencyFile: depsFile,
		Workers:        workers,
		Logger:         logger,
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if outputDir != "" && outputFile != "" {
		return fmt.Errorf("cannot use both --output-dir and --output flags")
	}

	source, err := resolveSource()
	if err != nil {
		return err
	}

	reports, err := fdnorm.Analyze(ctx, source, options())
	if err != nil {
		return err
	}

	outOpts := &fdnorm.OutputOptions{OutputDir: outputDir, Format: format, Writer: cmd.OutOrStdout()}
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to close output file: %v\n", err)
			}
		}()
		outOpts.Writer = f
	}

	if err := fdnorm.FormatReports(reports, outOpts); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	pending := 0
	for _, r := range reports {
		if !r.AlreadyNormalized() {
			pending++
		}
	}
	_, _ = successColor.Fprintf(cmd.ErrOrStderr(), "✔ analyzed %d relation(s), %d need decomposition\n", len(reports), pending)
	return nil
}

func findRelation(relations []fdnorm.Relation, name string) (fdnorm.Relation, error) {
	for _, r := range relations {
		if r.Name == name {
			return r, nil
		}
	}
	return fdnorm.Relation{}, fmt.Errorf("relation %s not found", name)
}

func loadRelations() ([]fdnorm.Relation, error) {
	source, err := resolveSource()
	if err != nil {
		return nil, err
	}
	return fdnorm.LoadRelations(context.Background(), source, options())
}

func runClosure(cmd *cobra.Command, args []string) error {
	relations, err := loadRelations()
	if err != nil {
		return err
	}
	rel, err := findRelation(relations, relationName)
	if err != nil {
		return err
	}

	x := fdnorm.Attrs(parseTableList(closureAttrs)...)
	if missing := x.Difference(rel.Schema.Attributes()); !missing.IsEmpty() {
		return fmt.Errorf("attributes %s are not in relation %s", missing, rel.Name)
	}

	closure := fdnorm.Closure(x, rel.Schema.Dependencies())
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s+ = ", x)
	_, _ = highlightColor.Fprintln(out, closure)
	if rel.Schema.Attributes().IsSubsetOf(closure) {
		_, _ = successColor.Fprintf(out, "%s is a superkey of %s\n", x, rel.Name)
	}
	return nil
}

func runEquivalent(cmd *cobra.Command, args []string) error {
	relations, err := loadRelations()
	if err != nil {
		return err
	}
	a, err := findRelation(relations, relationName)
	if err != nil {
		return err
	}
	b, err := findRelation(relations, otherRelation)
	if err != nil {
		return err
	}

	if !fdnorm.Equivalent(a.Schema.Dependencies(), b.Schema.Dependencies()) {
		_, _ = failureColor.Fprintf(cmd.OutOrStdout(), "✘ %s and %s are not equivalent\n", a.Name, b.Name)
		return fmt.Errorf("dependency sets differ")
	}
	_, _ = successColor.Fprintf(cmd.OutOrStdout(), "✔ %s and %s are equivalent\n", a.Name, b.Name)
	return nil
}

func main() {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		_, _ = failureColor.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
