package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// ErrUnknownReference is returned when a fixture names a user, role,
// permission or content that the fixtures don't define.
var ErrUnknownReference = errors.New("unknown fixture reference")

// dateLayouts are tried in order; the second accepts unpadded months and days.
var dateLayouts = []string{"2006-01-02", "2006-1-2"}

// Date is a calendar day at UTC midnight.
type Date struct {
	time.Time
}

// ParseDate parses YYYY-MM-DD, with or without zero padding.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseDate(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (any, error) {
	return d.Format(dateLayouts[0]), nil
}

type Fixtures struct {
	Users           []UserFixture           `yaml:"users"`
	Permissions     []PermissionFixture     `yaml:"permissions"`
	Roles           []RoleFixture           `yaml:"roles"`
	RolePermissions []RolePermissionFixture `yaml:"role_permissions"`
	RoleUsers       []RoleUserFixture       `yaml:"role_users"`
	Content         []ContentFixture        `yaml:"content"`
	Comments        []CommentFixture        `yaml:"comments"`
}

type UserFixture struct {
	UserName string        `yaml:"user_name"`
	Email    string        `yaml:"email"`
	Secret   SecretFixture `yaml:"secret"`
}

type SecretFixture struct {
	Password   string `yaml:"password"`
	ExpiryDate Date   `yaml:"expiry_date"`
}

type PermissionFixture struct {
	PermissionName string `yaml:"permission_name"`
	Description    string `yaml:"description"`
}

type RoleFixture struct {
	RoleName    string `yaml:"role_name"`
	Description string `yaml:"description"`
}

// RolePermissionFixture grants permissions, by name, to a role.
type RolePermissionFixture struct {
	Role        string   `yaml:"role"`
	Permissions []string `yaml:"permissions"`
}

// RoleUserFixture grants a role to users, by email.
type RoleUserFixture struct {
	Role  string   `yaml:"role"`
	Users []string `yaml:"users"`
}

// ContentFixture names its author and optional contributor by email.
type ContentFixture struct {
	Title       string `yaml:"title"`
	Body        string `yaml:"content"`
	Author      string `yaml:"author"`
	Contributor string `yaml:"contributor,omitempty"`
}

// CommentFixture names its content by title and its user by email.
type CommentFixture struct {
	Content string `yaml:"content"`
	User    string `yaml:"user"`
	Comment string `yaml:"comment"`
	Date    Date   `yaml:"date"`
}

// Default returns the embedded sample data.
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

// Load reads fixtures from path, or the embedded sample data if path is empty.
func Load(path string) (*Fixtures, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixtures %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a fixtures document. Unknown keys are rejected.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks natural keys are unique and every reference resolves.
func (f *Fixtures) Validate() error {
	emails := make(map[string]bool, len(f.Users))
	for _, u := range f.Users {
		if u.Email == "" || u.UserName == "" {
			return fmt.Errorf("user %q: user_name and email are required", u.Email)
		}
		if u.Secret.Password == "" || u.Secret.ExpiryDate.IsZero() {
			return fmt.Errorf("user %q: secret password and expiry_date are required", u.Email)
		}
		if emails[u.Email] {
			return fmt.Errorf("duplicate user email %q", u.Email)
		}
		emails[u.Email] = true
	}

	permissions := make(map[string]bool, len(f.Permissions))
	for _, p := range f.Permissions {
		if permissions[p.PermissionName] {
			return fmt.Errorf("duplicate permission %q", p.PermissionName)
		}
		permissions[p.PermissionName] = true
	}

	roles := make(map[string]bool, len(f.Roles))
	for _, r := range f.Roles {
		if roles[r.RoleName] {
			return fmt.Errorf("duplicate role %q", r.RoleName)
		}
		roles[r.RoleName] = true
	}

	for _, rp := range f.RolePermissions {
		if !roles[rp.Role] {
			return fmt.Errorf("role_permissions: role %q: %w", rp.Role, ErrUnknownReference)
		}
		for _, name := range rp.Permissions {
			if !permissions[name] {
				return fmt.Errorf("role_permissions: permission %q: %w", name, ErrUnknownReference)
			}
		}
	}

	for _, ru := range f.RoleUsers {
		if !roles[ru.Role] {
			return fmt.Errorf("role_users: role %q: %w", ru.Role, ErrUnknownReference)
		}
		for _, email := range ru.Users {
			if !emails[email] {
				return fmt.Errorf("role_users: user %q: %w", email, ErrUnknownReference)
			}
		}
	}

	titles := make(map[string]bool, len(f.Content))
	for _, c := range f.Content {
		if titles[c.Title] {
			return fmt.Errorf("duplicate content title %q", c.Title)
		}
		titles[c.Title] = true
		if !emails[c.Author] {
			return fmt.Errorf("content %q: author %q: %w", c.Title, c.Author, ErrUnknownReference)
		}
		if c.Contributor != "" && !emails[c.Contributor] {
			return fmt.Errorf("content %q: contributor %q: %w", c.Title, c.Contributor, ErrUnknownReference)
		}
	}

	for _, c := range f.Comments {
		if !titles[c.Content] {
			return fmt.Errorf("comment %q: content %q: %w", c.Comment, c.Content, ErrUnknownReference)
		}
		if !emails[c.User] {
			return fmt.Errorf("comment %q: user %q: %w", c.Comment, c.User, ErrUnknownReference)
		}
	}
	return nil
}
