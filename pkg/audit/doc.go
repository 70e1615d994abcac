// Package audit writes an RFC5424 audit trail of the operations that change
// the database: connections, schema synchronization and drops, and seeding.
//
// # Usage
//
//	logger := audit.NewLogger(os.Stderr)
//	logger.Log(audit.SchemaEvent{Operation: "sync", Tables: model.TableNames(), Success: true})
//
// A nil *Logger is valid and discards events, so callers need no guard when
// auditing is disabled.
package audit
