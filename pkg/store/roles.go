package store

import (
	"context"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
)

// RolesStore abstracts role storage and role membership operations
type RolesStore interface {
	// CreateRoles inserts roles in order and sets their RoleID
	CreateRoles(ctx context.Context, roles []model.Role) error

	// ListRoles returns every role ordered by role_id
	ListRoles(ctx context.Context) ([]model.Role, error)

	// FindRoleByName returns ErrNotFound if no role has the name
	FindRoleByName(ctx context.Context, name string) (*model.Role, error)

	// FindRoleByID returns ErrNotFound if the role doesn't exist
	FindRoleByID(ctx context.Context, roleID uint) (*model.Role, error)

	// FindRolesByNames returns the roles with the given names, ordered by role_id
	FindRolesByNames(ctx context.Context, names []string) ([]model.Role, error)

	// AttachPermissions links permissions to a role. Existing links are kept.
	AttachPermissions(ctx context.Context, roleID uint, permissionIDs []uint) error

	// AttachUsers links users to a role. Existing links are kept.
	AttachUsers(ctx context.Context, roleID uint, userIDs []uint) error

	// FetchRolePermissions lazily loads the permissions of a role
	FetchRolePermissions(ctx context.Context, roleID uint) ([]model.Permission, error)

	// FetchRoleUsers lazily loads the users holding a role
	FetchRoleUsers(ctx context.Context, roleID uint) ([]model.User, error)

	// ListRolesWithPermissions returns every role with Permissions filled
	ListRolesWithPermissions(ctx context.Context) ([]model.Role, error)

	// ListRolesWithUsers returns every role with Users filled. Users carry
	// only user_id, user_name and email.
	ListRolesWithUsers(ctx context.Context) ([]model.Role, error)
}
