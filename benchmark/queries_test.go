package benchmark

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/cms-in-go/pkg/schema"
	"github.com/doodlesbykumbi/cms-in-go/pkg/seed"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
	gormstore "github.com/doodlesbykumbi/cms-in-go/pkg/store/gorm"
	"github.com/doodlesbykumbi/cms-in-go/pkg/testutil"
)

func seededStores(b *testing.B) store.Stores {
	b.Helper()
	ctx := context.Background()

	database := testutil.OpenSQLite(b)
	require.NoError(b, schema.Sync(ctx, database))

	stores := gormstore.NewStores(database)
	fixtures, err := seed.Default()
	require.NoError(b, err)
	_, err = seed.New(stores, nil).Seed(ctx, fixtures)
	require.NoError(b, err)
	return stores
}

func BenchmarkRolePermissions(b *testing.B) {
	stores := seededStores(b)
	ctx := context.Background()

	b.Run("Eager: one join table query", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = stores.Roles.ListRolesWithPermissions(ctx)
		}
	})

	b.Run("Lazy: one query per role", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			roles, _ := stores.Roles.ListRoles(ctx)
			for _, r := range roles {
				_, _ = stores.Roles.FetchRolePermissions(ctx, r.RoleID)
			}
		}
	})
}

func BenchmarkAssociationQueries(b *testing.B) {
	stores := seededStores(b)
	ctx := context.Background()
	cutoff := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)

	b.Run("Secrets expiring with users", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = stores.Secrets.ListSecretsExpiringBefore(ctx, cutoff)
		}
	})

	b.Run("Content with author and contributor", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = stores.Content.ListContentWithUsers(ctx)
		}
	})

	b.Run("Comments ordered by user name", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = stores.Comments.ListCommentsByUserName(ctx)
		}
	})
}
