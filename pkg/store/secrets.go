package store

import (
	"context"
	"time"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
)

// SecretsStore abstracts secret storage operations
type SecretsStore interface {
	// CreateSecret attaches a secret to secret.UserID.
	// Returns ErrDuplicate if the user already has one, ErrReferenced if the
	// user doesn't exist.
	CreateSecret(ctx context.Context, secret *model.Secret) error

	// FetchUserSecret returns the secret of a user, or ErrNotFound
	FetchUserSecret(ctx context.Context, userID uint) (*model.Secret, error)

	// FetchSecretUser returns the owner of a secret, or ErrNotFound
	FetchSecretUser(ctx context.Context, secretID uint) (*model.User, error)

	// ListSecretsExpiringBefore returns secret_id, expiry_date and user_id of
	// every secret whose expiry_date is strictly before cutoff, each with
	// its User loaded. The password is not selected.
	ListSecretsExpiringBefore(ctx context.Context, cutoff time.Time) ([]model.Secret, error)

	// CountUserSecrets returns how many secrets reference a user
	CountUserSecrets(ctx context.Context, userID uint) (int64, error)
}
