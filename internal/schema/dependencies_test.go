package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tordrt/fdnorm/internal/fd"
)

func usersTable() Table {
	return Table{
		Name: "users",
		Columns: []Column{
			{Name: "id", Type: "integer"},
			{Name: "email", Type: "text"},
			{Name: "nickname", Type: "text", Nullable: true},
			{Name: "country", Type: "text"},
		},
		PrimaryKey: []string{"id"},
		Indexes: []Index{
			{Name: "users_email_key", Columns: []string{"email"}, IsUnique: true},
			{Name: "users_nickname_key", Columns: []string{"nickname"}, IsUnique: true},
			{Name: "idx_country", Columns: []string{"country"}},
		},
	}
}

func TestKeys(t *testing.T) {
	table := usersTable()
	assert.Equal(t, [][]string{{"id"}, {"email"}}, table.Keys())
}

func TestKeyDependencies(t *testing.T) {
	table := usersTable()
	deps := table.KeyDependencies()

	want := fd.NewFDSet(
		fd.MustDependency(fd.Attrs("id"), fd.Attrs("email", "nickname", "country")),
		fd.MustDependency(fd.Attrs("email"), fd.Attrs("id", "nickname", "country")),
	)
	assert.Equal(t, want.String(), deps.String())
}

func TestKeyDependenciesSkipsAllColumnKey(t *testing.T) {
	table := Table{
		Name:       "tags",
		Columns:    []Column{{Name: "post_id"}, {Name: "tag"}},
		PrimaryKey: []string{"post_id", "tag"},
	}
	assert.Equal(t, 0, table.KeyDependencies().Len())
}

func TestToRelations(t *testing.T) {
	s := &Schema{Tables: []Table{usersTable(), {Name: "empty"}}}

	_, err := s.ToRelations()
	require.Error(t, err)
	assert.ErrorIs(t, err, fd.ErrEmptySchema)
	assert.Contains(t, err.Error(), "empty")

	s.Tables = s.Tables[:1]
	relations, err := s.ToRelations()
	require.NoError(t, err)
	require.Len(t, relations, 1)
	assert.Equal(t, "users", relations[0].Name)
	// id is tried first and email still determines everything without it
	assert.True(t, relations[0].Schema.MinimalKey().Equal(fd.Attrs("email")))
}

func TestFindTable(t *testing.T) {
	s := &Schema{Tables: []Table{usersTable()}}
	assert.NotNil(t, s.FindTable("users"))
	assert.Nil(t, s.FindTable("orders"))
}
