package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// Reporter receives a banner before each seeding stage.
type Reporter interface {
	Section(text string)
}

// Result maps the natural keys of the seeded rows onto their generated ids.
type Result struct {
	Users       map[string]uint `json:"users"`
	Permissions map[string]uint `json:"permissions"`
	Roles       map[string]uint `json:"roles"`
	Content     map[string]uint `json:"content"`
	Comments    int             `json:"comments"`
}

// Seeder inserts fixtures through the stores in dependency order.
type Seeder struct {
	stores   store.Stores
	reporter Reporter
}

// New creates a Seeder. reporter may be nil.
func New(stores store.Stores, reporter Reporter) *Seeder {
	return &Seeder{stores: stores, reporter: reporter}
}

func (s *Seeder) section(text string) {
	if s.reporter != nil {
		s.reporter.Section(text)
	}
}

// Seed inserts f into an empty schema. The first failing insert stops the
// sequence; rows inserted before it are kept.
func (s *Seeder) Seed(ctx context.Context, f *Fixtures) (*Result, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Users:       make(map[string]uint, len(f.Users)),
		Permissions: make(map[string]uint, len(f.Permissions)),
		Roles:       make(map[string]uint, len(f.Roles)),
		Content:     make(map[string]uint, len(f.Content)),
	}

	steps := []struct {
		title string
		run   func(context.Context, *Fixtures, *Result) error
	}{
		{"Inserting USER & SECRET", s.seedUsers},
		{"Inserting PERMISSION", s.seedPermissions},
		{"Inserting ROLE", s.seedRoles},
		{"Associating Role & Permission", s.seedRolePermissions},
		{"Inserting in Role", s.seedRoleUsers},
		{"Inserting in Content", s.seedContent},
		{"Inserting in Comment", s.seedComments},
	}
	for _, step := range steps {
		s.section(step.title)
		if err := step.run(ctx, f, result); err != nil {
			return result, fmt.Errorf("%s: %w", step.title, err)
		}
	}

	log.Printf("Seeded %d users, %d permissions, %d roles, %d content, %d comments",
		len(result.Users), len(result.Permissions), len(result.Roles), len(result.Content), result.Comments)
	return result, nil
}

func (s *Seeder) seedUsers(ctx context.Context, f *Fixtures, result *Result) error {
	for _, u := range f.Users {
		user := &model.User{UserName: u.UserName, Email: u.Email}
		if err := s.stores.Users.CreateUser(ctx, user); err != nil {
			return err
		}
		result.Users[u.Email] = user.UserID

		secret := &model.Secret{
			Password:   u.Secret.Password,
			ExpiryDate: u.Secret.ExpiryDate.Time,
			UserID:     user.UserID,
		}
		if err := s.stores.Secrets.CreateSecret(ctx, secret); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedPermissions(ctx context.Context, f *Fixtures, result *Result) error {
	permissions := make([]model.Permission, 0, len(f.Permissions))
	for _, p := range f.Permissions {
		permissions = append(permissions, model.Permission{PermissionName: p.PermissionName, Description: p.Description})
	}
	if err := s.stores.Permissions.CreatePermissions(ctx, permissions); err != nil {
		return err
	}
	for _, p := range permissions {
		result.Permissions[p.PermissionName] = p.PermissionID
	}
	return nil
}

func (s *Seeder) seedRoles(ctx context.Context, f *Fixtures, result *Result) error {
	roles := make([]model.Role, 0, len(f.Roles))
	for _, r := range f.Roles {
		roles = append(roles, model.Role{RoleName: r.RoleName, Description: r.Description})
	}
	if err := s.stores.Roles.CreateRoles(ctx, roles); err != nil {
		return err
	}
	for _, r := range roles {
		result.Roles[r.RoleName] = r.RoleID
	}
	return nil
}

// seedRolePermissions looks the role up by name and its permissions by name
// set, then attaches them.
func (s *Seeder) seedRolePermissions(ctx context.Context, f *Fixtures, _ *Result) error {
	for _, rp := range f.RolePermissions {
		role, err := s.stores.Roles.FindRoleByName(ctx, rp.Role)
		if err != nil {
			return err
		}
		permissions, err := s.stores.Permissions.FindPermissionsByNames(ctx, rp.Permissions)
		if err != nil {
			return err
		}
		if len(permissions) != len(rp.Permissions) {
			return fmt.Errorf("role %s: found %d of %d permissions: %w",
				rp.Role, len(permissions), len(rp.Permissions), ErrUnknownReference)
		}
		ids := make([]uint, 0, len(permissions))
		for _, p := range permissions {
			ids = append(ids, p.PermissionID)
		}
		if err := s.stores.Roles.AttachPermissions(ctx, role.RoleID, ids); err != nil {
			return err
		}
	}
	return nil
}

// seedRoleUsers looks the role up by id and its users by email set, then
// attaches them.
func (s *Seeder) seedRoleUsers(ctx context.Context, f *Fixtures, result *Result) error {
	for _, ru := range f.RoleUsers {
		role, err := s.stores.Roles.FindRoleByID(ctx, result.Roles[ru.Role])
		if err != nil {
			return err
		}
		users, err := s.stores.Users.FindUsersByEmails(ctx, ru.Users)
		if err != nil {
			return err
		}
		if len(users) != len(ru.Users) {
			return fmt.Errorf("role %s: found %d of %d users: %w",
				ru.Role, len(users), len(ru.Users), ErrUnknownReference)
		}
		ids := make([]uint, 0, len(users))
		for _, u := range users {
			ids = append(ids, u.UserID)
		}
		if err := s.stores.Roles.AttachUsers(ctx, role.RoleID, ids); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedContent(ctx context.Context, f *Fixtures, result *Result) error {
	for _, c := range f.Content {
		content := &model.Content{
			Title:    c.Title,
			Body:     c.Body,
			AuthorID: result.Users[c.Author],
		}
		if c.Contributor != "" {
			id := result.Users[c.Contributor]
			content.ContributorID = &id
		}
		if err := s.stores.Content.CreateContent(ctx, content); err != nil {
			return err
		}
		result.Content[c.Title] = content.ContentID
	}
	return nil
}

func (s *Seeder) seedComments(ctx context.Context, f *Fixtures, result *Result) error {
	for _, c := range f.Comments {
		comment := &model.Comment{
			Body:      c.Comment,
			Date:      c.Date.Time,
			ContentID: result.Content[c.Content],
			UserID:    result.Users[c.User],
		}
		if err := s.stores.Comments.CreateComment(ctx, comment); err != nil {
			return err
		}
		result.Comments++
	}
	return nil
}
