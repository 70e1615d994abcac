package model

// UserRole links a user to a role. The pair is the primary key.
type UserRole struct {
	UserID uint `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	RoleID uint `gorm:"column:role_id;primaryKey;autoIncrement:false" json:"role_id"`

	User *User `gorm:"references:UserID;constraint:OnUpdate:NO ACTION,OnDelete:CASCADE" json:"-"`
	Role *Role `gorm:"references:RoleID;constraint:OnUpdate:NO ACTION,OnDelete:CASCADE" json:"-"`
}

func (UserRole) TableName() string {
	return "user_role"
}
