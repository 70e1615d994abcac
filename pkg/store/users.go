package store

import (
	"context"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
)

// UsersStore abstracts user storage operations
type UsersStore interface {
	// CreateUser inserts a user and sets its UserID.
	// Returns ErrDuplicate if the email is taken.
	CreateUser(ctx context.Context, user *model.User) error

	// ListUsers returns every user ordered by user_id
	ListUsers(ctx context.Context) ([]model.User, error)

	// FindUsersByIDs returns the users with the given ids, ordered by user_id
	FindUsersByIDs(ctx context.Context, ids []uint) ([]model.User, error)

	// FindUsersByEmails returns the users with the given emails, ordered by user_id
	FindUsersByEmails(ctx context.Context, emails []string) ([]model.User, error)

	// FindUserByEmail returns ErrNotFound if no user has the email
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)

	// DeleteUser deletes a user together with its secret and role memberships.
	// Content the user contributed keeps existing with no contributor.
	// Returns ErrReferenced if the user authored content or wrote comments,
	// ErrNotFound if the user doesn't exist.
	DeleteUser(ctx context.Context, userID uint) error

	// FetchUserRoles lazily loads the roles held by a user
	FetchUserRoles(ctx context.Context, userID uint) ([]model.Role, error)

	// FetchAuthored returns the content a user authored
	FetchAuthored(ctx context.Context, userID uint) ([]model.Content, error)

	// FetchContributed returns the content a user contributed to
	FetchContributed(ctx context.Context, userID uint) ([]model.Content, error)
}
