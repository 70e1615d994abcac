package model

import "time"

// Comment is a dated remark left by a user on a piece of content.
type Comment struct {
	CommentID uint      `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	Body      string    `gorm:"column:comment;type:varchar(255);not null" json:"comment"`
	Date      time.Time `gorm:"column:date;not null" json:"date"`
	ContentID uint      `gorm:"column:content_id;not null" json:"content_id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`

	Content *Content `gorm:"references:ContentID" json:"content,omitempty"`
	User    *User    `gorm:"references:UserID" json:"user,omitempty"`
}

func (Comment) TableName() string {
	return "comment"
}
