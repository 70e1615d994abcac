// Package schema synchronizes the model tables with the database.
//
// Sync is destructive: it drops every table of the model package and
// recreates it, so running it twice yields the same shape and no rows.
// Verify inspects the live database and reports every missing table,
// column, foreign key or unique index.
package schema
