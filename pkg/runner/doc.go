// Package runner runs the reference query sequence over seeded stores:
// all users, secrets expiring before a cutoff with their users, each role's
// permissions loaded on demand, roles with their users, content with author
// and contributor, comments ordered by user name, and each user's
// contributed content. Every query prints under its own section banner.
package runner
