package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// Ensure PermissionsStore implements store.PermissionsStore
var _ store.PermissionsStore = (*PermissionsStore)(nil)

// PermissionsStore implements store.PermissionsStore using GORM
type PermissionsStore struct {
	db *gorm.DB
}

// NewPermissionsStore creates a new PermissionsStore
func NewPermissionsStore(db *gorm.DB) *PermissionsStore {
	return &PermissionsStore{db: db}
}

func (s *PermissionsStore) CreatePermissions(ctx context.Context, permissions []model.Permission) error {
	if len(permissions) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&permissions).Error; err != nil {
		return wrapErr(err, "failed to create permissions")
	}
	return nil
}

func (s *PermissionsStore) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	var permissions []model.Permission
	if err := s.db.WithContext(ctx).Order("permission_id").Find(&permissions).Error; err != nil {
		return nil, wrapErr(err, "failed to list permissions")
	}
	return permissions, nil
}

func (s *PermissionsStore) FindPermissionsByNames(ctx context.Context, names []string) ([]model.Permission, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var permissions []model.Permission
	err := s.db.WithContext(ctx).Where("permission_name IN ?", names).Order("permission_id").Find(&permissions).Error
	if err != nil {
		return nil, wrapErr(err, "failed to find permissions %v", names)
	}
	return permissions, nil
}

func (s *PermissionsStore) FetchPermissionRoles(ctx context.Context, permissionID uint) ([]model.Role, error) {
	grouped, err := loadThrough(ctx, s.db, permissionRoles, []uint{permissionID}, roleKey)
	if err != nil {
		return nil, wrapErr(err, "failed to fetch roles of permission %d", permissionID)
	}
	return grouped[permissionID], nil
}
