package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// NewStores builds every GORM store over one handle
func NewStores(db *gorm.DB) store.Stores {
	return store.Stores{
		Users:       NewUsersStore(db),
		Secrets:     NewSecretsStore(db),
		Roles:       NewRolesStore(db),
		Permissions: NewPermissionsStore(db),
		Content:     NewContentStore(db),
		Comments:    NewCommentsStore(db),
		Health:      NewHealthStore(db),
	}
}
