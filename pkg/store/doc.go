// Package store provides storage abstractions for the CMS.
//
// This package defines interfaces for database operations, decoupling the
// seeder and the query runner from the gorm implementation in the gorm
// subpackage and letting them be tested with mocks.
//
// # Available Stores
//
//   - UsersStore: users, their roles and the content they wrote
//   - SecretsStore: the one secret of each user, expiry queries
//   - RolesStore: roles and their permission and user links
//   - PermissionsStore: permissions and the roles holding them
//   - ContentStore: content with author and contributor
//   - CommentsStore: comments with their content and user
//   - HealthStore: connectivity check
//
// Relationships are explicit: every association has an attach method and
// fetch methods on both sides. Junction rows are never returned.
//
// # Usage
//
//	stores := gormstore.NewStores(db)
//	user, err := stores.Users.FindUserByEmail(ctx, "doe@example.com")
//	if err != nil {
//	    if errors.Is(err, store.ErrNotFound) {
//	        // Handle not found
//	    }
//	}
package store
