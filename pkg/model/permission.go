package model

// Permission is a single capability that roles may hold.
type Permission struct {
	PermissionID   uint   `gorm:"column:permission_id;primaryKey;autoIncrement" json:"permission_id"`
	PermissionName string `gorm:"column:permission_name;type:varchar(45);uniqueIndex:idx_permission_permission_name;not null" json:"permission_name"`
	Description    string `gorm:"column:description;type:varchar(255);not null" json:"description"`

	Roles []Role `gorm:"-" json:"roles,omitempty"`
}

func (Permission) TableName() string {
	return "permission"
}
