package model

// Role is a named bundle of permissions granted to users.
type Role struct {
	RoleID      uint   `gorm:"column:role_id;primaryKey;autoIncrement" json:"role_id"`
	RoleName    string `gorm:"column:role_name;type:varchar(150);uniqueIndex:idx_role_role_name;not null" json:"role_name"`
	Description string `gorm:"column:description;type:varchar(255);not null" json:"description"`

	Permissions []Permission `gorm:"-" json:"permissions,omitempty"`
	Users       []User       `gorm:"-" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "role"
}
