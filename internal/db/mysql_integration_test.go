//go:build integration
// +build integration

package db

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mysqlTestDSN returns the DSN of a MySQL 8 server to run against, or skips
func mysqlTestDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("FDNORM_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("FDNORM_TEST_MYSQL_DSN not set")
	}
	return dsn
}

func createMySQLFixture(t *testing.T, dsn string) {
	t.Helper()

	conn, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	defer conn.Close()

	stmts := []string{
		`DROP TABLE IF EXISTS accounts`,
		`CREATE TABLE accounts (
			id INT NOT NULL PRIMARY KEY,
			tenant VARCHAR(64) NOT NULL,
			handle VARCHAR(64) NOT NULL,
			email VARCHAR(255) NOT NULL,
			UNIQUE KEY ux_tenant_handle (tenant, (lower(handle))),
			UNIQUE KEY ux_email_lower ((lower(email))),
			UNIQUE KEY ux_email (email)
		)`,
	}
	for _, stmt := range stmts {
		_, err := conn.Exec(stmt)
		require.NoError(t, err)
	}
	t.Cleanup(func() {
		if c, err := sql.Open("mysql", dsn); err == nil {
			_, _ = c.Exec(`DROP TABLE IF EXISTS accounts`)
			_ = c.Close()
		}
	})
}

func TestMySQLSkipsFunctionalIndexes(t *testing.T) {
	ctx := context.Background()
	dsn := mysqlTestDSN(t)
	createMySQLFixture(t, dsn)

	extractor, err := Open(ctx, Source{Driver: DriverMySQL, DSN: dsn})
	require.NoError(t, err)
	defer extractor.Close()

	s, err := extractor.ExtractSchema(ctx, []string{"accounts"})
	require.NoError(t, err)

	accounts := s.FindTable("accounts")
	require.NotNil(t, accounts)
	require.Len(t, accounts.Indexes, 1)
	assert.Equal(t, "ux_email", accounts.Indexes[0].Name)
	assert.Equal(t, [][]string{{"id"}, {"email"}}, accounts.Keys())

	for _, d := range accounts.KeyDependencies().Dependencies() {
		assert.NotEqual(t, "{tenant}", d.Determinant.String())
	}
}
