package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parse(t *testing.T, value any) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(value, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func TestTableNames(t *testing.T) {
	names := TableNames()
	require.Len(t, names, len(All()))
	for i, value := range All() {
		assert.Equal(t, names[i], parse(t, value).Table)
	}
}

func TestBelongsToRelationships(t *testing.T) {
	tests := []struct {
		model      any
		relation   string
		foreignKey string
		references string
	}{
		{&Secret{}, "User", "user_id", "user_id"},
		{&Content{}, "Author", "user_id", "user_id"},
		{&Content{}, "Contributor", "contributor_id", "user_id"},
		{&Comment{}, "Content", "content_id", "content_id"},
		{&Comment{}, "User", "user_id", "user_id"},
		{&RolePermission{}, "Role", "role_id", "role_id"},
		{&RolePermission{}, "Permission", "permission_id", "permission_id"},
		{&UserRole{}, "User", "user_id", "user_id"},
		{&UserRole{}, "Role", "role_id", "role_id"},
	}
	for _, tt := range tests {
		s := parse(t, tt.model)
		t.Run(s.Table+"."+tt.relation, func(t *testing.T) {
			rel, ok := s.Relationships.Relations[tt.relation]
			require.True(t, ok)
			assert.Equal(t, schema.BelongsTo, rel.Type)
			require.Len(t, rel.References, 1)
			assert.Equal(t, tt.foreignKey, rel.References[0].ForeignKey.DBName)
			assert.Equal(t, tt.references, rel.References[0].PrimaryKey.DBName)
		})
	}
}

func TestNoReverseRelationships(t *testing.T) {
	for _, value := range []any{&Role{}, &Permission{}, &User{}} {
		s := parse(t, value)
		assert.Empty(t, s.Relationships.Relations, s.Table)
	}
}

func TestJunctionPrimaryKeys(t *testing.T) {
	s := parse(t, &UserRole{})
	assert.ElementsMatch(t, []string{"user_id", "role_id"}, s.PrimaryFieldDBNames)

	s = parse(t, &RolePermission{})
	assert.ElementsMatch(t, []string{"role_id", "permission_id"}, s.PrimaryFieldDBNames)
}
