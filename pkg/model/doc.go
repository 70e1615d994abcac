// Package model defines the database models of the CMS.
//
// This package contains GORM models for users, their roles and permissions,
// their secrets, and the content and comments they write. Relationships are
// declared only on the model that owns the foreign key; the collection fields
// (Role.Permissions, User.Roles, Content.Comments, ...) are not persisted and
// are filled by the store layer.
//
// # Core Models
//
//   - Role: named bundle of permissions
//   - Permission: a single capability
//   - User: an account, with created_at/updated_at timestamps
//   - Secret: the password of exactly one user, with an expiry date
//   - Content: text with a mandatory author and an optional contributor
//   - Comment: a dated remark on a piece of content by a user
//   - RolePermission, UserRole: junction rows with composite primary keys
//
// # Referential Actions
//
// Deleting a user cascades to its secret and its user_role rows and sets
// content.contributor_id to NULL. A user who authored content or wrote
// comments cannot be deleted; the engine rejects it. Deleting a role or a
// permission cascades to its junction rows.
//
// # Database Schema
//
//   - role, permission, user, secret, content, comment
//   - role_permission (role_id, permission_id)
//   - user_role (user_id, role_id)
package model
