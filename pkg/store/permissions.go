package store

import (
	"context"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
)

// PermissionsStore abstracts permission storage operations
type PermissionsStore interface {
	// CreatePermissions inserts permissions in order and sets their PermissionID
	CreatePermissions(ctx context.Context, permissions []model.Permission) error

	// ListPermissions returns every permission ordered by permission_id
	ListPermissions(ctx context.Context) ([]model.Permission, error)

	// FindPermissionsByNames returns the permissions with the given names,
	// ordered by permission_id
	FindPermissionsByNames(ctx context.Context, names []string) ([]model.Permission, error)

	// FetchPermissionRoles lazily loads the roles holding a permission
	FetchPermissionRoles(ctx context.Context, permissionID uint) ([]model.Role, error)
}
