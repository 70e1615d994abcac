package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// Ensure ContentStore implements store.ContentStore
var _ store.ContentStore = (*ContentStore)(nil)

// ContentStore implements store.ContentStore using GORM
type ContentStore struct {
	db *gorm.DB
}

// NewContentStore creates a new ContentStore
func NewContentStore(db *gorm.DB) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) CreateContent(ctx context.Context, content *model.Content) error {
	if err := s.db.WithContext(ctx).Omit("Author", "Contributor").Create(content).Error; err != nil {
		return wrapErr(err, "failed to create content %q", content.Title)
	}
	return nil
}

func (s *ContentStore) SetContributor(ctx context.Context, contentID uint, contributorID *uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var content model.Content
		if err := tx.Select("content_id").First(&content, contentID).Error; err != nil {
			return err
		}
		return tx.Model(&content).Update("contributor_id", contributorID).Error
	})
	if err != nil {
		return wrapErr(err, "failed to set contributor of content %d", contentID)
	}
	return nil
}

func (s *ContentStore) FetchAuthor(ctx context.Context, contentID uint) (*model.User, error) {
	var content model.Content
	if err := s.db.WithContext(ctx).Preload("Author").First(&content, contentID).Error; err != nil {
		return nil, wrapErr(err, "failed to fetch author of content %d", contentID)
	}
	return content.Author, nil
}

func (s *ContentStore) FetchContributor(ctx context.Context, contentID uint) (*model.User, error) {
	var content model.Content
	if err := s.db.WithContext(ctx).Preload("Contributor").First(&content, contentID).Error; err != nil {
		return nil, wrapErr(err, "failed to fetch contributor of content %d", contentID)
	}
	return content.Contributor, nil
}

func (s *ContentStore) FetchComments(ctx context.Context, contentID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := s.db.WithContext(ctx).Where("content_id = ?", contentID).Order("comment_id").Find(&comments).Error; err != nil {
		return nil, wrapErr(err, "failed to fetch comments of content %d", contentID)
	}
	return comments, nil
}

// ListContentWithUsers preloads instead of joining so content without a
// contributor keeps a nil Contributor.
func (s *ContentStore) ListContentWithUsers(ctx context.Context) ([]model.Content, error) {
	var content []model.Content
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Contributor").
		Order("content_id").
		Find(&content).Error
	if err != nil {
		return nil, wrapErr(err, "failed to list content")
	}
	return content, nil
}
