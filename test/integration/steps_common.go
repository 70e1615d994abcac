package integration

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
	"github.com/doodlesbykumbi/cms-in-go/pkg/schema"
	"github.com/doodlesbykumbi/cms-in-go/pkg/seed"
	"github.com/doodlesbykumbi/cms-in-go/pkg/store"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc     *TestContext
	seeded *seed.Result
	err    error
	output string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^an empty database$`, s.anEmptyDatabase)
	sc.Step(`^the schema is synchronized$`, s.theSchemaIsSynchronized)
	sc.Step(`^the reference data set is seeded$`, s.theReferenceDataSetIsSeeded)

	// Schema steps
	sc.Step(`^the schema should verify$`, s.theSchemaShouldVerify)
	sc.Step(`^the schema should not verify$`, s.theSchemaShouldNotVerify)
	sc.Step(`^the table "([^"]*)" should have (\d+) rows?$`, s.theTableShouldHaveRows)

	// Seed steps
	sc.Step(`^I seed the reference data set again$`, s.iSeedTheReferenceDataSetAgain)
	sc.Step(`^every user should have exactly one secret$`, s.everyUserShouldHaveExactlyOneSecret)

	// Query steps
	sc.Step(`^the secrets expiring before "([^"]*)" should belong to "([^"]*)"$`, s.theSecretsExpiringBeforeShouldBelongTo)
	sc.Step(`^the role "([^"]*)" should have the permissions "([^"]*)"$`, s.theRoleShouldHaveThePermissions)
	sc.Step(`^the role "([^"]*)" should have the users "([^"]*)"$`, s.theRoleShouldHaveTheUsers)
	sc.Step(`^the content "([^"]*)" should have the contributor "([^"]*)"$`, s.theContentShouldHaveTheContributor)
	sc.Step(`^the content "([^"]*)" should have no contributor$`, s.theContentShouldHaveNoContributor)
	sc.Step(`^the comments ordered by user name should be by "([^"]*)"$`, s.theCommentsOrderedByUserNameShouldBeBy)

	// Delete steps
	sc.Step(`^I delete the user "([^"]*)"$`, s.iDeleteTheUser)
	sc.Step(`^the deletion should succeed$`, s.theOperationShouldSucceed)
	sc.Step(`^the operation should fail with "([^"]*)"$`, s.theOperationShouldFailWith)
	sc.Step(`^the user "([^"]*)" should not exist$`, s.theUserShouldNotExist)

	// cmsctl steps
	sc.Step(`^I run cmsctl "([^"]*)"$`, s.iRunCmsctl)
	sc.Step(`^the command should succeed$`, s.theOperationShouldSucceed)
	sc.Step(`^the output should contain "([^"]*)"$`, s.theOutputShouldContain)
}

// Background steps

func (s *StepsContext) anEmptyDatabase(ctx context.Context) error {
	return schema.Drop(ctx, s.tc.DB)
}

func (s *StepsContext) theSchemaIsSynchronized(ctx context.Context) error {
	return schema.Sync(ctx, s.tc.DB)
}

func (s *StepsContext) theReferenceDataSetIsSeeded(ctx context.Context) error {
	fixtures, err := seed.Default()
	if err != nil {
		return err
	}
	s.seeded, err = seed.New(s.tc.Stores, nil).Seed(ctx, fixtures)
	return err
}

// Schema steps

func (s *StepsContext) theSchemaShouldVerify(ctx context.Context) error {
	return schema.Verify(ctx, s.tc.DB)
}

func (s *StepsContext) theSchemaShouldNotVerify(ctx context.Context) error {
	if err := schema.Verify(ctx, s.tc.DB); err == nil {
		return fmt.Errorf("expected schema verification to fail")
	}
	return nil
}

func (s *StepsContext) theTableShouldHaveRows(ctx context.Context, table string, expected int) error {
	if !slices.Contains(model.TableNames(), table) {
		return fmt.Errorf("unknown table %q", table)
	}
	var count int64
	if err := s.tc.DB.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
	return nil
}

// Seed steps

func (s *StepsContext) iSeedTheReferenceDataSetAgain(ctx context.Context) error {
	fixtures, err := seed.Default()
	if err != nil {
		return err
	}
	_, s.err = seed.New(s.tc.Stores, nil).Seed(ctx, fixtures)
	return nil
}

func (s *StepsContext) everyUserShouldHaveExactlyOneSecret(ctx context.Context) error {
	users, err := s.tc.Stores.Users.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		count, err := s.tc.Stores.Secrets.CountUserSecrets(ctx, u.UserID)
		if err != nil {
			return err
		}
		if count != 1 {
			return fmt.Errorf("user %s has %d secrets", u.UserName, count)
		}
	}
	return nil
}

// Query steps

func (s *StepsContext) theSecretsExpiringBeforeShouldBelongTo(ctx context.Context, date, names string) error {
	cutoff, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return err
	}
	secrets, err := s.tc.Stores.Secrets.ListSecretsExpiringBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	var got []string
	for _, secret := range secrets {
		if secret.User == nil {
			return fmt.Errorf("secret %d has no user loaded", secret.SecretID)
		}
		got = append(got, secret.User.UserName)
	}
	return expectList(splitList(names), got)
}

func (s *StepsContext) theRoleShouldHaveThePermissions(ctx context.Context, roleName, names string) error {
	role, err := s.tc.Stores.Roles.FindRoleByName(ctx, roleName)
	if err != nil {
		return err
	}
	lazy, err := s.tc.Stores.Roles.FetchRolePermissions(ctx, role.RoleID)
	if err != nil {
		return err
	}
	var got []string
	for _, p := range lazy {
		got = append(got, p.PermissionName)
	}
	if err := expectList(splitList(names), got); err != nil {
		return fmt.Errorf("lazy fetch: %w", err)
	}

	roles, err := s.tc.Stores.Roles.ListRolesWithPermissions(ctx)
	if err != nil {
		return err
	}
	for _, r := range roles {
		if r.RoleID != role.RoleID {
			continue
		}
		got = got[:0]
		for _, p := range r.Permissions {
			got = append(got, p.PermissionName)
		}
		if err := expectList(splitList(names), got); err != nil {
			return fmt.Errorf("eager fetch: %w", err)
		}
		return nil
	}
	return fmt.Errorf("role %s missing from eager fetch", roleName)
}

func (s *StepsContext) theRoleShouldHaveTheUsers(ctx context.Context, roleName, names string) error {
	role, err := s.tc.Stores.Roles.FindRoleByName(ctx, roleName)
	if err != nil {
		return err
	}
	users, err := s.tc.Stores.Roles.FetchRoleUsers(ctx, role.RoleID)
	if err != nil {
		return err
	}
	var got []string
	for _, u := range users {
		got = append(got, u.UserName)
	}
	return expectList(splitList(names), got)
}

func (s *StepsContext) contentID(title string) (uint, error) {
	if s.seeded == nil {
		return 0, fmt.Errorf("the reference data set was not seeded")
	}
	id, ok := s.seeded.Content[title]
	if !ok {
		return 0, fmt.Errorf("unknown content %q", title)
	}
	return id, nil
}

func (s *StepsContext) theContentShouldHaveTheContributor(ctx context.Context, title, name string) error {
	id, err := s.contentID(title)
	if err != nil {
		return err
	}
	contributor, err := s.tc.Stores.Content.FetchContributor(ctx, id)
	if err != nil {
		return err
	}
	if contributor == nil || contributor.UserName != name {
		return fmt.Errorf("expected contributor %s, got %+v", name, contributor)
	}
	return nil
}

func (s *StepsContext) theContentShouldHaveNoContributor(ctx context.Context, title string) error {
	id, err := s.contentID(title)
	if err != nil {
		return err
	}
	contributor, err := s.tc.Stores.Content.FetchContributor(ctx, id)
	if err != nil {
		return err
	}
	if contributor != nil {
		return fmt.Errorf("expected no contributor, got %s", contributor.UserName)
	}
	author, err := s.tc.Stores.Content.FetchAuthor(ctx, id)
	if err != nil {
		return err
	}
	if author == nil {
		return fmt.Errorf("content %q has no author", title)
	}
	return nil
}

func (s *StepsContext) theCommentsOrderedByUserNameShouldBeBy(ctx context.Context, names string) error {
	comments, err := s.tc.Stores.Comments.ListCommentsByUserName(ctx)
	if err != nil {
		return err
	}
	var got []string
	for _, c := range comments {
		if c.User == nil {
			return fmt.Errorf("comment %d has no user loaded", c.CommentID)
		}
		got = append(got, c.User.UserName)
	}
	return expectList(splitList(names), got)
}

// Delete steps

func (s *StepsContext) iDeleteTheUser(ctx context.Context, email string) error {
	user, err := s.tc.Stores.Users.FindUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	s.err = s.tc.Stores.Users.DeleteUser(ctx, user.UserID)
	return nil
}

func (s *StepsContext) theOperationShouldSucceed() error {
	if s.err != nil {
		return fmt.Errorf("expected success, got: %w", s.err)
	}
	return nil
}

var sentinels = map[string]error{
	"referenced": store.ErrReferenced,
	"duplicate":  store.ErrDuplicate,
	"not found":  store.ErrNotFound,
}

func (s *StepsContext) theOperationShouldFailWith(kind string) error {
	target, ok := sentinels[kind]
	if !ok {
		return fmt.Errorf("unknown error kind %q", kind)
	}
	if !errors.Is(s.err, target) {
		return fmt.Errorf("expected %v, got %v", target, s.err)
	}
	return nil
}

func (s *StepsContext) theUserShouldNotExist(ctx context.Context, email string) error {
	_, err := s.tc.Stores.Users.FindUserByEmail(ctx, email)
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("expected user %s to be gone, got %v", email, err)
	}
	return nil
}

func splitList(list string) []string {
	var items []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func expectList(expected, got []string) error {
	if !slices.Equal(expected, got) {
		return fmt.Errorf("expected %v, got %v", expected, got)
	}
	return nil
}
