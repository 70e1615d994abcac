package model

// RolePermission links a role to a permission. The pair is the primary key.
type RolePermission struct {
	RoleID       uint `gorm:"column:role_id;primaryKey;autoIncrement:false" json:"role_id"`
	PermissionID uint `gorm:"column:permission_id;primaryKey;autoIncrement:false" json:"permission_id"`

	Role       *Role       `gorm:"references:RoleID;constraint:OnUpdate:NO ACTION,OnDelete:CASCADE" json:"-"`
	Permission *Permission `gorm:"references:PermissionID;constraint:OnUpdate:NO ACTION,OnDelete:CASCADE" json:"-"`
}

func (RolePermission) TableName() string {
	return "role_permission"
}
