package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/tordrt/fdnorm/internal/schema"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Source identifies a database to introspect
type Source struct {
	Driver     string
	DSN        string
	SchemaName string
}

// Extractor reads table definitions from a live database
type Extractor interface {
	// ExtractSchema extracts the named tables, or every base table when
	// tables is empty
	ExtractSchema(ctx context.Context, tables []string) (*schema.Schema, error)
	Close() error
}

// IsURL reports whether s looks like a supported database URL
func IsURL(s string) bool {
	_, err := ParseURL(s)
	return err == nil
}

// ParseURL detects the driver from the URL scheme and returns the connection
// string the driver expects
func ParseURL(url string) (Source, error) {
	if url == "" {
		return Source{}, fmt.Errorf("database URL is required")
	}

	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return Source{Driver: DriverPostgres, DSN: url}, nil
	case strings.HasPrefix(url, "mysql://"):
		// The Go MySQL driver takes a bare DSN
		return Source{Driver: DriverMySQL, DSN: strings.TrimPrefix(url, "mysql://")}, nil
	case strings.HasPrefix(url, "sqlite://"):
		return Source{Driver: DriverSQLite, DSN: strings.TrimPrefix(url, "sqlite://")}, nil
	}

	return Source{}, fmt.Errorf("invalid database URL scheme (must start with postgres://, mysql://, or sqlite://)")
}

// Open connects to the source and returns an extractor for it. The caller
// must Close the extractor.
func Open(ctx context.Context, src Source) (Extractor, error) {
	switch src.Driver {
	case DriverPostgres:
		client, err := NewPostgresClient(ctx, src.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		schemaName := src.SchemaName
		if schemaName == "" {
			schemaName = "public"
		}
		return NewPostgresExtractor(client, schemaName), nil

	case DriverMySQL:
		schemaName := src.SchemaName
		if schemaName == "" {
			name, err := ParseDatabaseName(src.DSN)
			if err != nil {
				return nil, fmt.Errorf("failed to determine database name: %w (please specify a schema name)", err)
			}
			schemaName = name
		}
		client, err := NewMySQLClient(ctx, src.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
		}
		return NewMySQLExtractor(client, schemaName), nil

	case DriverSQLite:
		client, err := NewSQLiteClient(ctx, src.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
		}
		return NewSQLiteExtractor(client), nil
	}

	return nil, fmt.Errorf("unsupported database type: %s", src.Driver)
}

// tableReader is the per-driver part of extraction
type tableReader interface {
	tableNames(ctx context.Context) ([]string, error)
	columns(ctx context.Context, table string) ([]schema.Column, error)
	primaryKey(ctx context.Context, table string) ([]string, error)
	indexes(ctx context.Context, table string) ([]schema.Index, error)
}

// extract drives a tableReader over the requested tables
func extract(ctx context.Context, r tableReader, requested []string) (*schema.Schema, error) {
	names := requested
	if len(names) == 0 {
		var err error
		names, err = r.tableNames(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get table names: %w", err)
		}
	}

	tables := make([]schema.Table, 0, len(names))
	for _, name := range names {
		table, err := extractTable(ctx, r, name)
		if err != nil {
			return nil, fmt.Errorf("failed to extract table %s: %w", name, err)
		}
		tables = append(tables, *table)
	}

	return &schema.Schema{Tables: tables}, nil
}

// extractTable extracts all information for a single table
func extractTable(ctx context.Context, r tableReader, name string) (*schema.Table, error) {
	table := &schema.Table{Name: name}

	columns, err := r.columns(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to extract columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table not found or has no columns")
	}
	table.Columns = columns

	pk, err := r.primaryKey(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to extract primary key: %w", err)
	}
	table.PrimaryKey = pk

	indexes, err := r.indexes(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to extract indexes: %w", err)
	}
	table.Indexes = indexes

	return table, nil
}
