package audit

import (
	"fmt"
	"strconv"
	"strings"
)

// ConnectEvent records a connection and authentication attempt
type ConnectEvent struct {
	Engine       string
	Database     string // redacted connection URL
	Success      bool
	ErrorMessage string
}

func (e ConnectEvent) MessageID() string {
	return "connect"
}

func (e ConnectEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("connected to %s database %s", e.Engine, e.Database)
	}
	return withError(fmt.Sprintf("failed to connect to %s database %s", e.Engine, e.Database), e.ErrorMessage)
}

func (e ConnectEvent) Severity() Severity {
	return successSeverity(e.Success)
}

func (e ConnectEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ConnectEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDDatabase: {
			"engine": e.Engine,
			"url":    e.Database,
		},
		SDIDAction: {
			"operation": "connect",
			"result":    result(e.Success),
		},
	}
}

// SchemaEvent records a schema synchronization or drop
type SchemaEvent struct {
	Operation    string // sync or drop
	Tables       []string
	Success      bool
	ErrorMessage string
}

func (e SchemaEvent) MessageID() string {
	return "schema"
}

func (e SchemaEvent) Message() string {
	verb := "synchronized"
	if e.Operation == "drop" {
		verb = "dropped"
	}
	if e.Success {
		return fmt.Sprintf("%s %d tables", verb, len(e.Tables))
	}
	return withError(fmt.Sprintf("schema %s failed", e.Operation), e.ErrorMessage)
}

func (e SchemaEvent) Severity() Severity {
	if e.Success {
		// Both operations discard every row.
		return SeverityNotice
	}
	return SeverityError
}

func (e SchemaEvent) Facility() int {
	return FacilityUser
}

func (e SchemaEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAction: {
			"operation": "schema-" + e.Operation,
			"result":    result(e.Success),
			"tables":    strings.Join(e.Tables, ","),
		},
	}
}

// SeedEvent records the insertion of a fixtures data set
type SeedEvent struct {
	Source       string // fixtures path, or "embedded"
	Users        int
	Roles        int
	Content      int
	Comments     int
	Success      bool
	ErrorMessage string
}

func (e SeedEvent) MessageID() string {
	return "seed"
}

func (e SeedEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("seeded %d users, %d roles, %d content and %d comments from %s",
			e.Users, e.Roles, e.Content, e.Comments, e.Source)
	}
	return withError(fmt.Sprintf("failed to seed from %s", e.Source), e.ErrorMessage)
}

func (e SeedEvent) Severity() Severity {
	return successSeverity(e.Success)
}

func (e SeedEvent) Facility() int {
	return FacilityUser
}

func (e SeedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSeed: {
			"source":   e.Source,
			"users":    strconv.Itoa(e.Users),
			"roles":    strconv.Itoa(e.Roles),
			"content":  strconv.Itoa(e.Content),
			"comments": strconv.Itoa(e.Comments),
		},
		SDIDAction: {
			"operation": "seed",
			"result":    result(e.Success),
		},
	}
}

func successSeverity(success bool) Severity {
	if success {
		return SeverityInfo
	}
	return SeverityError
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func withError(msg, errMsg string) string {
	if errMsg != "" {
		return msg + ": " + errMsg
	}
	return msg
}
