package gorm

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// Ensure SecretsStore implements store.SecretsStore
var _ store.SecretsStore = (*SecretsStore)(nil)

// SecretsStore implements store.SecretsStore using GORM
type SecretsStore struct {
	db *gorm.DB
}

// NewSecretsStore creates a new SecretsStore
func NewSecretsStore(db *gorm.DB) *SecretsStore {
	return &SecretsStore{db: db}
}

func (s *SecretsStore) CreateSecret(ctx context.Context, secret *model.Secret) error {
	if err := s.db.WithContext(ctx).Create(secret).Error; err != nil {
		return wrapErr(err, "failed to create secret for user %d", secret.UserID)
	}
	return nil
}

func (s *SecretsStore) FetchUserSecret(ctx context.Context, userID uint) (*model.Secret, error) {
	var secret model.Secret
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&secret).Error; err != nil {
		return nil, wrapErr(err, "failed to fetch secret of user %d", userID)
	}
	return &secret, nil
}

func (s *SecretsStore) FetchSecretUser(ctx context.Context, secretID uint) (*model.User, error) {
	var secret model.Secret
	if err := s.db.WithContext(ctx).Preload("User").First(&secret, secretID).Error; err != nil {
		return nil, wrapErr(err, "failed to fetch user of secret %d", secretID)
	}
	return secret.User, nil
}

func (s *SecretsStore) ListSecretsExpiringBefore(ctx context.Context, cutoff time.Time) ([]model.Secret, error) {
	var secrets []model.Secret
	err := s.db.WithContext(ctx).
		Select("secret_id", "expiry_date", "user_id").
		Where("expiry_date < ?", cutoff).
		Preload("User").
		Order("secret_id").
		Find(&secrets).Error
	if err != nil {
		return nil, wrapErr(err, "failed to list secrets expiring before %s", cutoff.Format(time.DateOnly))
	}
	return secrets, nil
}

func (s *SecretsStore) CountUserSecrets(ctx context.Context, userID uint) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.Secret{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, wrapErr(err, "failed to count secrets of user %d", userID)
	}
	return n, nil
}
