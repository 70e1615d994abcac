package model

// Content is a piece of authored text. The author is mandatory, the
// contributor optional; deleting the contributor clears the reference.
type Content struct {
	ContentID     uint   `gorm:"column:content_id;primaryKey;autoIncrement" json:"content_id"`
	Title         string `gorm:"column:title;type:varchar(45);not null" json:"title"`
	Body          string `gorm:"column:content;type:varchar(255);not null" json:"content"`
	AuthorID      uint   `gorm:"column:user_id;not null" json:"user_id"`
	ContributorID *uint  `gorm:"column:contributor_id" json:"contributor_id"`

	Author      *User     `gorm:"references:UserID" json:"author,omitempty"`
	Contributor *User     `gorm:"references:UserID;constraint:OnDelete:SET NULL" json:"contributor"`
	Comments    []Comment `gorm:"-" json:"comments,omitempty"`
}

func (Content) TableName() string {
	return "content"
}
