package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/tordrt/fdnorm/internal/schema"
)

// SQLiteExtractor handles schema extraction from SQLite
type SQLiteExtractor struct {
	client *SQLiteClient
}

// NewSQLiteExtractor creates a new SQLite schema extractor
func NewSQLiteExtractor(client *SQLiteClient) *SQLiteExtractor {
	return &SQLiteExtractor{
		client: client,
	}
}

// ExtractSchema extracts the complete schema for specified tables
// If tables is empty, extracts all tables in the database
func (e *SQLiteExtractor) ExtractSchema(ctx context.Context, tables []string) (*schema.Schema, error) {
	return extract(ctx, e, tables)
}

// Close closes the underlying client
func (e *SQLiteExtractor) Close() error {
	return e.client.Close()
}

func (e *SQLiteExtractor) tableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := e.client.GetDB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tableList []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tableList = append(tableList, tableName)
	}

	return tableList, rows.Err()
}

// tableInfoRow is one row of PRAGMA table_info
type tableInfoRow struct {
	name    string
	colType string
	notNull bool
	pkOrder int
}

func (e *SQLiteExtractor) tableInfo(ctx context.Context, tableName string) ([]tableInfoRow, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(tableName))

	rows, err := e.client.GetDB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var info []tableInfoRow
	for rows.Next() {
		var cid, notNull, pk int
		var name, colType string
		var defaultValue sql.NullString

		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultValue, &pk); err != nil {
			return nil, err
		}
		info = append(info, tableInfoRow{name: name, colType: colType, notNull: notNull == 1, pkOrder: pk})
	}

	return info, rows.Err()
}

func (e *SQLiteExtractor) columns(ctx context.Context, tableName string) ([]schema.Column, error) {
	info, err := e.tableInfo(ctx, tableName)
	if err != nil {
		return nil, err
	}

	columns := make([]schema.Column, 0, len(info))
	for _, row := range info {
		columns = append(columns, schema.Column{
			Name: row.name,
			Type: row.colType,
			// SQLite lets primary key columns hold NULL unless declared otherwise,
			// but a NULL key is never matched by another row
			Nullable: !row.notNull && row.pkOrder == 0,
		})
	}
	return columns, nil
}

// primaryKey orders key columns by their position in the key, not in the table
func (e *SQLiteExtractor) primaryKey(ctx context.Context, tableName string) ([]string, error) {
	info, err := e.tableInfo(ctx, tableName)
	if err != nil {
		return nil, err
	}

	var keyRows []tableInfoRow
	for _, row := range info {
		if row.pkOrder > 0 {
			keyRows = append(keyRows, row)
		}
	}
	sort.Slice(keyRows, func(i, j int) bool { return keyRows[i].pkOrder < keyRows[j].pkOrder })

	pk := make([]string, len(keyRows))
	for i, row := range keyRows {
		pk[i] = row.name
	}
	return pk, nil
}

// indexes skips the automatic primary key index and partial indexes. UNIQUE
// constraints surface as sqlite_autoindex_* entries with origin "u".
func (e *SQLiteExtractor) indexes(ctx context.Context, tableName string) ([]schema.Index, error) {
	query := fmt.Sprintf("PRAGMA index_list(%s)", quoteIdent(tableName))

	rows, err := e.client.GetDB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	type entry struct {
		name   string
		unique bool
	}
	var entries []entry
	for rows.Next() {
		var seq, unique, partial int
		var name, origin string

		if err := rows.Scan(&seq, &name, &unique, &origin, &partial); err != nil {
			rows.Close()
			return nil, err
		}
		if origin == "pk" || partial == 1 {
			continue
		}
		entries = append(entries, entry{name: name, unique: unique == 1})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	indexes := make([]schema.Index, 0, len(entries))
	for _, ent := range entries {
		columns, err := e.indexColumns(ctx, ent.name)
		if err != nil {
			return nil, err
		}
		if len(columns) > 0 {
			indexes = append(indexes, schema.Index{Name: ent.name, Columns: columns, IsUnique: ent.unique})
		}
	}
	return indexes, nil
}

// indexColumns lists an index's columns. Indexes over expressions yield no
// columns, since uniqueness of an expression says nothing about the columns.
func (e *SQLiteExtractor) indexColumns(ctx context.Context, indexName string) ([]string, error) {
	query := fmt.Sprintf("PRAGMA index_info(%s)", quoteIdent(indexName))

	rows, err := e.client.GetDB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var seqno, cid int
		var colName sql.NullString

		if err := rows.Scan(&seqno, &cid, &colName); err != nil {
			return nil, err
		}
		if !colName.Valid {
			return nil, nil
		}
		columns = append(columns, colName.String)
	}
	return columns, rows.Err()
}
