package gorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// Ensure RolesStore implements store.RolesStore
var _ store.RolesStore = (*RolesStore)(nil)

// RolesStore implements store.RolesStore using GORM
type RolesStore struct {
	db *gorm.DB
}

// NewRolesStore creates a new RolesStore
func NewRolesStore(db *gorm.DB) *RolesStore {
	return &RolesStore{db: db}
}

// userColumns is what role listings expose of a user.
var userColumns = []string{"user_id", "user_name", "email"}

func (s *RolesStore) CreateRoles(ctx context.Context, roles []model.Role) error {
	if len(roles) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&roles).Error; err != nil {
		return wrapErr(err, "failed to create roles")
	}
	return nil
}

func (s *RolesStore) ListRoles(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := s.db.WithContext(ctx).Order("role_id").Find(&roles).Error; err != nil {
		return nil, wrapErr(err, "failed to list roles")
	}
	return roles, nil
}

func (s *RolesStore) FindRoleByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := s.db.WithContext(ctx).Where("role_name = ?", name).First(&role).Error; err != nil {
		return nil, wrapErr(err, "failed to find role %s", name)
	}
	return &role, nil
}

func (s *RolesStore) FindRoleByID(ctx context.Context, roleID uint) (*model.Role, error) {
	var role model.Role
	if err := s.db.WithContext(ctx).First(&role, roleID).Error; err != nil {
		return nil, wrapErr(err, "failed to find role %d", roleID)
	}
	return &role, nil
}

func (s *RolesStore) FindRolesByNames(ctx context.Context, names []string) ([]model.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var roles []model.Role
	if err := s.db.WithContext(ctx).Where("role_name IN ?", names).Order("role_id").Find(&roles).Error; err != nil {
		return nil, wrapErr(err, "failed to find roles %v", names)
	}
	return roles, nil
}

func (s *RolesStore) AttachPermissions(ctx context.Context, roleID uint, permissionIDs []uint) error {
	if len(permissionIDs) == 0 {
		return nil
	}
	links := make([]model.RolePermission, 0, len(permissionIDs))
	for _, id := range permissionIDs {
		links = append(links, model.RolePermission{RoleID: roleID, PermissionID: id})
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
	if err != nil {
		return wrapErr(err, "failed to attach permissions %v to role %d", permissionIDs, roleID)
	}
	return nil
}

func (s *RolesStore) AttachUsers(ctx context.Context, roleID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	links := make([]model.UserRole, 0, len(userIDs))
	for _, id := range userIDs {
		links = append(links, model.UserRole{UserID: id, RoleID: roleID})
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
	if err != nil {
		return wrapErr(err, "failed to attach users %v to role %d", userIDs, roleID)
	}
	return nil
}

func (s *RolesStore) FetchRolePermissions(ctx context.Context, roleID uint) ([]model.Permission, error) {
	grouped, err := loadThrough(ctx, s.db, rolePermissions, []uint{roleID}, permissionKey)
	if err != nil {
		return nil, wrapErr(err, "failed to fetch permissions of role %d", roleID)
	}
	return grouped[roleID], nil
}

func (s *RolesStore) FetchRoleUsers(ctx context.Context, roleID uint) ([]model.User, error) {
	grouped, err := loadThrough(ctx, s.db, roleUsers, []uint{roleID}, userKey)
	if err != nil {
		return nil, wrapErr(err, "failed to fetch users of role %d", roleID)
	}
	return grouped[roleID], nil
}

func (s *RolesStore) ListRolesWithPermissions(ctx context.Context) ([]model.Role, error) {
	roles, err := s.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	grouped, err := loadThrough(ctx, s.db, rolePermissions, roleIDs(roles), permissionKey)
	if err != nil {
		return nil, wrapErr(err, "failed to load role permissions")
	}
	for i := range roles {
		roles[i].Permissions = grouped[roles[i].RoleID]
	}
	return roles, nil
}

func (s *RolesStore) ListRolesWithUsers(ctx context.Context) ([]model.Role, error) {
	roles, err := s.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	grouped, err := loadThrough(ctx, s.db, roleUsers, roleIDs(roles), userKey, userColumns...)
	if err != nil {
		return nil, wrapErr(err, "failed to load role users")
	}
	for i := range roles {
		roles[i].Users = grouped[roles[i].RoleID]
	}
	return roles, nil
}

func roleIDs(roles []model.Role) []uint {
	ids := make([]uint, 0, len(roles))
	for _, r := range roles {
		ids = append(ids, r.RoleID)
	}
	return ids
}
