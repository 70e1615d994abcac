package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/cms-in-go/pkg/schema"
	"github.com/doodlesbykumbi/cms-in-go/pkg/seed"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
	gormstore "github.com/doodlesbykumbi/cms-in-go/pkg/store/gorm"
	"github.com/doodlesbykumbi/cms-in-go/pkg/testutil"
)

type sections []string

func (s *sections) Section(text string) { *s = append(*s, text) }

func TestSeedDefaultFixtures(t *testing.T) {
	ctx := context.Background()
	database := testutil.OpenSQLite(t)
	require.NoError(t, schema.Sync(ctx, database))
	stores := gormstore.NewStores(database)

	fixtures, err := seed.Default()
	require.NoError(t, err)

	var banners sections
	result, err := seed.New(stores, &banners).Seed(ctx, fixtures)
	require.NoError(t, err)

	assert.Equal(t, sections{
		"Inserting USER & SECRET",
		"Inserting PERMISSION",
		"Inserting ROLE",
		"Associating Role & Permission",
		"Inserting in Role",
		"Inserting in Content",
		"Inserting in Comment",
	}, banners)

	assert.Len(t, result.Users, 10)
	assert.Len(t, result.Permissions, 11)
	assert.Len(t, result.Roles, 5)
	assert.Len(t, result.Content, 6)
	assert.Equal(t, 6, result.Comments)
	assert.Equal(t, uint(4), result.Users["doe@example.com"])

	for email, id := range result.Users {
		n, err := stores.Secrets.CountUserSecrets(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n, email)
	}

	editor, err := stores.Roles.FetchRolePermissions(ctx, result.Roles["Editor"])
	require.NoError(t, err)
	var names []string
	for _, p := range editor {
		names = append(names, p.PermissionName)
	}
	assert.ElementsMatch(t, []string{"Publish", "Edit", "View", "MyComment", "Moderate Comment"}, names)

	authors, err := stores.Roles.FetchRoleUsers(ctx, result.Roles["Author"])
	require.NoError(t, err)
	names = names[:0]
	for _, u := range authors {
		names = append(names, u.UserName)
	}
	assert.Equal(t, []string{"Doe", "Mary", "Raj"}, names)
}

func TestSeedStopsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	database := testutil.OpenSQLite(t)
	require.NoError(t, schema.Sync(ctx, database))
	stores := gormstore.NewStores(database)

	fixtures, err := seed.Default()
	require.NoError(t, err)
	_, err = seed.New(stores, nil).Seed(ctx, fixtures)
	require.NoError(t, err)

	// Seeding twice collides on the first user's unique email.
	_, err = seed.New(stores, nil).Seed(ctx, fixtures)
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrDuplicate))
	assert.Contains(t, err.Error(), "Inserting USER & SECRET")

	users, err := stores.Users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 10)
}

func TestSeedValidatesBeforeInserting(t *testing.T) {
	ctx := context.Background()
	database := testutil.OpenSQLite(t)
	require.NoError(t, schema.Sync(ctx, database))
	stores := gormstore.NewStores(database)

	fixtures, err := seed.Default()
	require.NoError(t, err)
	fixtures.Comments[0].User = "ghost@example.com"

	_, err = seed.New(stores, nil).Seed(ctx, fixtures)
	assert.ErrorIs(t, err, seed.ErrUnknownReference)

	users, err := stores.Users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
