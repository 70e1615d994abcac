package store

import (
	"context"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
)

// ContentStore abstracts content storage operations
type ContentStore interface {
	// CreateContent inserts content; AuthorID is required, ContributorID optional
	CreateContent(ctx context.Context, content *model.Content) error

	// SetContributor sets or clears (nil) the contributor of a content
	SetContributor(ctx context.Context, contentID uint, contributorID *uint) error

	// FetchAuthor returns the author of a content
	FetchAuthor(ctx context.Context, contentID uint) (*model.User, error)

	// FetchContributor returns the contributor of a content, or nil if it has none
	FetchContributor(ctx context.Context, contentID uint) (*model.User, error)

	// FetchComments returns the comments on a content ordered by comment_id
	FetchComments(ctx context.Context, contentID uint) ([]model.Comment, error)

	// ListContentWithUsers returns all content with Author and Contributor
	// loaded. Contributor is nil when absent.
	ListContentWithUsers(ctx context.Context) ([]model.Content, error)
}
