package runner

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
)

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func (m *MockUsersStore) CreateUser(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUsersStore) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUsersStore) FindUsersByIDs(ctx context.Context, ids []uint) ([]model.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUsersStore) FindUsersByEmails(ctx context.Context, emails []string) ([]model.User, error) {
	args := m.Called(ctx, emails)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUsersStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) DeleteUser(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUsersStore) FetchUserRoles(ctx context.Context, userID uint) ([]model.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockUsersStore) FetchAuthored(ctx context.Context, userID uint) ([]model.Content, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Content), args.Error(1)
}

func (m *MockUsersStore) FetchContributed(ctx context.Context, userID uint) ([]model.Content, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Content), args.Error(1)
}

// MockSecretsStore implements store.SecretsStore for testing using testify/mock
type MockSecretsStore struct {
	mock.Mock
}

func (m *MockSecretsStore) CreateSecret(ctx context.Context, secret *model.Secret) error {
	return m.Called(ctx, secret).Error(0)
}

func (m *MockSecretsStore) FetchUserSecret(ctx context.Context, userID uint) (*model.Secret, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Secret), args.Error(1)
}

func (m *MockSecretsStore) FetchSecretUser(ctx context.Context, secretID uint) (*model.User, error) {
	args := m.Called(ctx, secretID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockSecretsStore) ListSecretsExpiringBefore(ctx context.Context, cutoff time.Time) ([]model.Secret, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]model.Secret), args.Error(1)
}

func (m *MockSecretsStore) CountUserSecrets(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
