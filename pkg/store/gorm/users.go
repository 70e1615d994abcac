package gorm

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

func (s *UsersStore) CreateUser(ctx context.Context, user *model.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return wrapErr(err, "failed to create user %s", user.Email)
	}
	return nil
}

func (s *UsersStore) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.db.WithContext(ctx).Order("user_id").Find(&users).Error; err != nil {
		return nil, wrapErr(err, "failed to list users")
	}
	return users, nil
}

func (s *UsersStore) FindUsersByIDs(ctx context.Context, ids []uint) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	if err := s.db.WithContext(ctx).Where("user_id IN ?", ids).Order("user_id").Find(&users).Error; err != nil {
		return nil, wrapErr(err, "failed to find users by ids %v", ids)
	}
	return users, nil
}

func (s *UsersStore) FindUsersByEmails(ctx context.Context, emails []string) ([]model.User, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	var users []model.User
	if err := s.db.WithContext(ctx).Where("email IN ?", emails).Order("user_id").Find(&users).Error; err != nil {
		return nil, wrapErr(err, "failed to find users by emails %v", emails)
	}
	return users, nil
}

func (s *UsersStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrapErr(err, "failed to find user by email %s", email)
	}
	return &user, nil
}

func (s *UsersStore) DeleteUser(ctx context.Context, userID uint) error {
	tx := s.db.WithContext(ctx).Delete(&model.User{}, userID)
	if tx.Error != nil {
		return wrapErr(tx.Error, "failed to delete user %d", userID)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("failed to delete user %d: %w", userID, store.ErrNotFound)
	}
	return nil
}

func (s *UsersStore) FetchUserRoles(ctx context.Context, userID uint) ([]model.Role, error) {
	grouped, err := loadThrough(ctx, s.db, userRoles, []uint{userID}, roleKey)
	if err != nil {
		return nil, wrapErr(err, "failed to fetch roles of user %d", userID)
	}
	return grouped[userID], nil
}

func (s *UsersStore) FetchAuthored(ctx context.Context, userID uint) ([]model.Content, error) {
	var content []model.Content
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("content_id").Find(&content).Error; err != nil {
		return nil, wrapErr(err, "failed to fetch content authored by user %d", userID)
	}
	return content, nil
}

func (s *UsersStore) FetchContributed(ctx context.Context, userID uint) ([]model.Content, error) {
	var content []model.Content
	if err := s.db.WithContext(ctx).Preload("Contributor").Where("contributor_id = ?", userID).Order("content_id").Find(&content).Error; err != nil {
		return nil, wrapErr(err, "failed to fetch content contributed by user %d", userID)
	}
	return content, nil
}
