package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// DefaultCutoff is the expiry date secrets are compared against.
var DefaultCutoff = time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)

// Printer receives the banners and result dumps of the queries.
type Printer interface {
	Section(text string)
	Dump(v any) error
}

// Options configures a Runner
type Options struct {
	// Cutoff selects secrets expiring strictly before it. Zero means DefaultCutoff.
	Cutoff time.Time
}

// Runner runs the reference query sequence against seeded stores.
type Runner struct {
	stores  store.Stores
	printer Printer
	cutoff  time.Time
}

// Step is one titled query of the sequence.
type Step struct {
	Title string
	Run   func(ctx context.Context) error
}

// New creates a Runner
func New(stores store.Stores, printer Printer, opts Options) *Runner {
	cutoff := opts.Cutoff
	if cutoff.IsZero() {
		cutoff = DefaultCutoff
	}
	return &Runner{stores: stores, printer: printer, cutoff: cutoff}
}

// Steps returns the query sequence in order.
func (r *Runner) Steps() []Step {
	return []Step{
		{"Fetch all Users", r.fetchUsers},
		{"Eager Association: Fetch Secret based on expiry_date", r.fetchExpiringSecrets},
		{"Lazy Role Permission Association Fetching", r.fetchRolePermissions},
		{"Eager Role & User Association Fetching", r.fetchRolesWithUsers},
		{"Fetching Content, Author & Contributor", r.fetchContent},
		{"Fetching Comment and User with Order By", r.fetchComments},
		{"List User and their Contributed Article", r.fetchContributions},
	}
}

// Run prints a banner and runs every step, stopping at the first error.
func (r *Runner) Run(ctx context.Context) error {
	for _, step := range r.Steps() {
		r.printer.Section(step.Title)
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.Title, err)
		}
	}
	return nil
}

func (r *Runner) fetchUsers(ctx context.Context) error {
	users, err := r.stores.Users.ListUsers(ctx)
	if err != nil {
		return err
	}
	return r.printer.Dump(users)
}

func (r *Runner) fetchExpiringSecrets(ctx context.Context) error {
	secrets, err := r.stores.Secrets.ListSecretsExpiringBefore(ctx, r.cutoff)
	if err != nil {
		return err
	}
	for _, secret := range secrets {
		if err := r.printer.Dump(secret); err != nil {
			return err
		}
	}
	return nil
}

// fetchRolePermissions loads each role's permissions on demand.
func (r *Runner) fetchRolePermissions(ctx context.Context) error {
	roles, err := r.stores.Roles.ListRoles(ctx)
	if err != nil {
		return err
	}
	for _, role := range roles {
		if err := r.printer.Dump(role); err != nil {
			return err
		}
		permissions, err := r.stores.Roles.FetchRolePermissions(ctx, role.RoleID)
		if err != nil {
			return err
		}
		if err := r.printer.Dump(nonNil(permissions)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) fetchRolesWithUsers(ctx context.Context) error {
	roles, err := r.stores.Roles.ListRolesWithUsers(ctx)
	if err != nil {
		return err
	}
	return r.printer.Dump(roles)
}

func (r *Runner) fetchContent(ctx context.Context) error {
	content, err := r.stores.Content.ListContentWithUsers(ctx)
	if err != nil {
		return err
	}
	return r.printer.Dump(content)
}

func (r *Runner) fetchComments(ctx context.Context) error {
	comments, err := r.stores.Comments.ListCommentsByUserName(ctx)
	if err != nil {
		return err
	}
	return r.printer.Dump(comments)
}

func (r *Runner) fetchContributions(ctx context.Context) error {
	users, err := r.stores.Users.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, user := range users {
		if err := r.printer.Dump(user); err != nil {
			return err
		}
		contributed, err := r.stores.Users.FetchContributed(ctx, user.UserID)
		if err != nil {
			return err
		}
		if err := r.printer.Dump(nonNil(contributed)); err != nil {
			return err
		}
	}
	return nil
}

// nonNil makes an empty association print as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
