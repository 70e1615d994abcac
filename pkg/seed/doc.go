// Package seed loads sample data and inserts it through the stores.
//
// Fixtures are YAML. The embedded fixtures.yaml holds the reference data set;
// a file given by CMS_FIXTURES_PATH replaces it. Rows reference each other
// by natural key (users by email, roles and permissions by name, content by
// title) and every reference is resolved before the first insert.
//
// Inserts run in dependency order: users and their secrets, permissions,
// roles, role-permission links, role-user links, content, comments. There
// is no rollback; a failure leaves the rows inserted so far.
package seed
