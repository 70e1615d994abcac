package store

import (
	"context"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
)

// CommentsStore abstracts comment storage operations
type CommentsStore interface {
	// CreateComment inserts a comment. Returns ErrReferenced if the content
	// or the user doesn't exist.
	CreateComment(ctx context.Context, comment *model.Comment) error

	// FetchCommentContent returns the content a comment belongs to
	FetchCommentContent(ctx context.Context, commentID uint) (*model.Content, error)

	// FetchCommentUser returns the user who wrote a comment
	FetchCommentUser(ctx context.Context, commentID uint) (*model.User, error)

	// ListCommentsByUserName returns every comment with its User loaded,
	// ordered by user_name ascending then comment_id
	ListCommentsByUserName(ctx context.Context) ([]model.Comment, error)
}
