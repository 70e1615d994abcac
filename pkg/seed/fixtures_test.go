package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixtures(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)

	assert.Len(t, f.Users, 10)
	assert.Len(t, f.Permissions, 11)
	assert.Len(t, f.Roles, 5)
	assert.Len(t, f.RolePermissions, 5)
	assert.Len(t, f.RoleUsers, 5)
	assert.Len(t, f.Content, 6)
	assert.Len(t, f.Comments, 6)

	assert.Equal(t, "Doe", f.Users[3].UserName)
	assert.Equal(t, time.Date(2023, 11, 6, 0, 0, 0, 0, time.UTC), f.Users[3].Secret.ExpiryDate.Time)
	assert.Equal(t, "Moderate Comment", f.Permissions[7].PermissionName)
	assert.Len(t, f.RolePermissions[0].Permissions, 11)
	assert.Equal(t, "suraj@example.com", f.Content[5].Contributor)
	assert.Empty(t, f.Content[0].Contributor)
	assert.Equal(t, "Like, share and follow for more", f.Comments[5].Comment)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-12-6")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 6, 0, 0, 0, 0, time.UTC), d.Time)

	d, err = ParseDate("2023-10-03")
	require.NoError(t, err)
	assert.Equal(t, 3, d.Day())

	_, err = ParseDate("03/10/2023")
	assert.Error(t, err)
}

func TestParseRejectsUnknownReferences(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "role permission",
			doc: `
permissions: [{permission_name: View, description: v}]
roles: [{role_name: Viewer, description: v}]
role_permissions: [{role: Viewer, permissions: [Edit]}]
`,
		},
		{
			name: "role user",
			doc: `
roles: [{role_name: Viewer, description: v}]
role_users: [{role: Viewer, users: [ghost@example.com]}]
`,
		},
		{
			name: "content author",
			doc: `
content: [{title: T, content: C, author: ghost@example.com}]
`,
		},
		{
			name: "comment content",
			doc: `
users: [{user_name: A, email: a@example.com, secret: {password: p, expiry_date: "2023-01-01"}}]
comments: [{content: Missing, user: a@example.com, comment: c, date: "2023-01-01"}]
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrUnknownReference)
		})
	}
}

func TestParseRejectsMalformedDocuments(t *testing.T) {
	_, err := Parse([]byte(`users: [{user_name: A, email: a@example.com, secret: {password: p, expiry_date: "yesterday"}}]`))
	assert.ErrorContains(t, err, "invalid date")

	_, err = Parse([]byte(`user: []`))
	assert.ErrorContains(t, err, "field user not found")

	_, err = Parse([]byte(`
users:
  - {user_name: A, email: a@example.com, secret: {password: p, expiry_date: "2023-01-01"}}
  - {user_name: B, email: a@example.com, secret: {password: p, expiry_date: "2023-01-01"}}
`))
	assert.ErrorContains(t, err, "duplicate user email")

	_, err = Parse([]byte(`users: [{user_name: A, email: a@example.com}]`))
	assert.ErrorContains(t, err, "secret password and expiry_date are required")
}

func TestLoad(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	assert.Len(t, f.Users, 10)

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users: [{user_name: Solo, email: solo@example.com, secret: {password: pw, expiry_date: "2024-2-9"}}]
`), 0o600))
	f, err = Load(path)
	require.NoError(t, err)
	require.Len(t, f.Users, 1)
	assert.Equal(t, time.February, f.Users[0].Secret.ExpiryDate.Month())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read fixtures")
}
