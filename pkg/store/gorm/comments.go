package gorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// Ensure CommentsStore implements store.CommentsStore
var _ store.CommentsStore = (*CommentsStore)(nil)

// CommentsStore implements store.CommentsStore using GORM
type CommentsStore struct {
	db *gorm.DB
}

// NewCommentsStore creates a new CommentsStore
func NewCommentsStore(db *gorm.DB) *CommentsStore {
	return &CommentsStore{db: db}
}

func (s *CommentsStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := s.db.WithContext(ctx).Omit("Content", "User").Create(comment).Error; err != nil {
		return wrapErr(err, "failed to create comment on content %d", comment.ContentID)
	}
	return nil
}

func (s *CommentsStore) FetchCommentContent(ctx context.Context, commentID uint) (*model.Content, error) {
	var comment model.Comment
	if err := s.db.WithContext(ctx).Preload("Content").First(&comment, commentID).Error; err != nil {
		return nil, wrapErr(err, "failed to fetch content of comment %d", commentID)
	}
	return comment.Content, nil
}

func (s *CommentsStore) FetchCommentUser(ctx context.Context, commentID uint) (*model.User, error) {
	var comment model.Comment
	if err := s.db.WithContext(ctx).Preload("User").First(&comment, commentID).Error; err != nil {
		return nil, wrapErr(err, "failed to fetch user of comment %d", commentID)
	}
	return comment.User, nil
}

func (s *CommentsStore) ListCommentsByUserName(ctx context.Context) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).
		Joins("User").
		Order(clause.OrderByColumn{Column: clause.Column{Table: "User", Name: "user_name"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "comment_id"}}).
		Find(&comments).Error
	if err != nil {
		return nil, wrapErr(err, "failed to list comments")
	}
	return comments, nil
}
