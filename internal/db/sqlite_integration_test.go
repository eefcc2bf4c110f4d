//go:build integration
// +build integration

package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tordrt/fdnorm/internal/fd"
)

func createSQLiteFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shop.db")
	conn, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer conn.Close()

	stmts := []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			nickname TEXT UNIQUE,
			country TEXT NOT NULL
		)`,
		`CREATE INDEX idx_country ON users(country)`,
		`CREATE TABLE order_items (
			order_id INTEGER NOT NULL,
			line INTEGER NOT NULL,
			product TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			PRIMARY KEY (order_id, line)
		)`,
	}
	for _, stmt := range stmts {
		_, err := conn.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestSQLiteExtraction(t *testing.T) {
	ctx := context.Background()
	path := createSQLiteFixture(t)

	extractor, err := Open(ctx, Source{Driver: DriverSQLite, DSN: path})
	require.NoError(t, err)
	defer extractor.Close()

	s, err := extractor.ExtractSchema(ctx, nil)
	require.NoError(t, err)
	require.Len(t, s.Tables, 2)

	users := s.FindTable("users")
	require.NotNil(t, users)
	assert.Equal(t, []string{"id"}, users.PrimaryKey)
	assert.Equal(t, [][]string{{"id"}, {"email"}}, users.Keys())

	items := s.FindTable("order_items")
	require.NotNil(t, items)
	assert.Equal(t, []string{"order_id", "line"}, items.PrimaryKey)

	r, err := items.ToRelation()
	require.NoError(t, err)
	assert.True(t, r.Schema.MinimalKey().Equal(fd.Attrs("order_id", "line")))
}

func TestSQLiteSpecificTables(t *testing.T) {
	ctx := context.Background()
	path := createSQLiteFixture(t)

	extractor, err := Open(ctx, Source{Driver: DriverSQLite, DSN: path})
	require.NoError(t, err)
	defer extractor.Close()

	s, err := extractor.ExtractSchema(ctx, []string{"users"})
	require.NoError(t, err)
	require.Len(t, s.Tables, 1)

	_, err = extractor.ExtractSchema(ctx, []string{"missing"})
	assert.Error(t, err)
}
