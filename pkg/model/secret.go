package model

import "time"

// Secret holds the credential of exactly one user. Deleting the user
// deletes the secret.
type Secret struct {
	SecretID   uint      `gorm:"column:secret_id;primaryKey;autoIncrement" json:"secret_id"`
	Password   string    `gorm:"column:password;type:varchar(45);not null" json:"password,omitempty"`
	ExpiryDate time.Time `gorm:"column:expiry_date;not null" json:"expiry_date"`
	UserID     uint      `gorm:"column:user_id;uniqueIndex:idx_secret_user_id;not null" json:"user_id"`

	User *User `gorm:"references:UserID;constraint:OnUpdate:NO ACTION,OnDelete:CASCADE" json:"user,omitempty"`
}

func (Secret) TableName() string {
	return "secret"
}
