package model

import "time"

// User is an account of the CMS. It is the only entity carrying timestamps.
type User struct {
	UserID    uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName  string    `gorm:"column:user_name;type:varchar(45);not null" json:"user_name"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex:idx_user_email;not null" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at,omitzero"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitzero"`

	Secret      *Secret   `gorm:"-" json:"secret,omitempty"`
	Roles       []Role    `gorm:"-" json:"roles,omitempty"`
	Authored    []Content `gorm:"-" json:"authored,omitempty"`
	Contributed []Content `gorm:"-" json:"contributed,omitempty"`
}

func (User) TableName() string {
	return "user"
}
