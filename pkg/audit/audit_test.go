package audit

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *Logger {
	logger := NewLogger(buf)
	logger.hostname = "host1"
	logger.pid = 42
	logger.now = func() time.Time {
		return time.Date(2023, 11, 1, 10, 30, 0, 123e6, time.UTC)
	}
	return logger
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Log(SchemaEvent{Operation: "sync", Tables: []string{"role", "user"}, Success: true})

	// FacilityUser*8 + SeverityNotice = 13
	assert.Equal(t,
		`<13>1 2023-11-01T10:30:00.123Z host1 cmsctl 42 schema [action@32473 operation="schema-sync" result="success" tables="role,user"] synchronized 2 tables`+"\n",
		buf.String())
}

func TestLoggerFormatMatchesRFC5424(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf).Log(ConnectEvent{Engine: "postgres", Database: "postgres://cms:xxxxx@db/cms", Success: true})

	pattern := regexp.MustCompile(`^<(\d+)>1 \S+Z \S+ cmsctl \d+ connect (\[[^\]]+\])+ connected to postgres database postgres://cms:xxxxx@db/cms\n$`)
	matches := pattern.FindStringSubmatch(buf.String())
	require.NotNil(t, matches, buf.String())
	assert.Equal(t, "86", matches[1])
}

func TestNilLoggerDiscards(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Log(SeedEvent{Source: "embedded", Success: true})
	})
}

func TestEvents(t *testing.T) {
	failure := errors.New("boom").Error()

	tests := []struct {
		name      string
		event     Event
		wantMsg   string
		wantSev   Severity
		wantFac   int
		wantMsgID string
	}{
		{
			name:      "successful connection",
			event:     ConnectEvent{Engine: "sqlite", Database: "sqlite://:memory:", Success: true},
			wantMsg:   "connected to sqlite database sqlite://:memory:",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "connect",
		},
		{
			name:      "failed connection",
			event:     ConnectEvent{Engine: "mysql", Database: "mysql://db/cms", ErrorMessage: failure},
			wantMsg:   "failed to connect to mysql database mysql://db/cms: boom",
			wantSev:   SeverityError,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "connect",
		},
		{
			name:      "schema drop",
			event:     SchemaEvent{Operation: "drop", Tables: []string{"a", "b", "c"}, Success: true},
			wantMsg:   "dropped 3 tables",
			wantSev:   SeverityNotice,
			wantFac:   FacilityUser,
			wantMsgID: "schema",
		},
		{
			name:      "failed schema sync",
			event:     SchemaEvent{Operation: "sync", ErrorMessage: failure},
			wantMsg:   "schema sync failed: boom",
			wantSev:   SeverityError,
			wantFac:   FacilityUser,
			wantMsgID: "schema",
		},
		{
			name:      "seed",
			event:     SeedEvent{Source: "embedded", Users: 10, Roles: 5, Content: 6, Comments: 6, Success: true},
			wantMsg:   "seeded 10 users, 5 roles, 6 content and 6 comments from embedded",
			wantSev:   SeverityInfo,
			wantFac:   FacilityUser,
			wantMsgID: "seed",
		},
		{
			name:      "failed seed",
			event:     SeedEvent{Source: "/tmp/f.yaml"},
			wantMsg:   "failed to seed from /tmp/f.yaml",
			wantSev:   SeverityError,
			wantFac:   FacilityUser,
			wantMsgID: "seed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.event.Message())
			assert.Equal(t, tt.wantSev, tt.event.Severity())
			assert.Equal(t, tt.wantFac, tt.event.Facility())
			assert.Equal(t, tt.wantMsgID, tt.event.MessageID())
			assert.NotEmpty(t, tt.event.StructuredData()[SDIDAction]["result"])
		})
	}
}

func TestSeedEventStructuredData(t *testing.T) {
	sd := SeedEvent{Source: "embedded", Users: 10, Comments: 6, Success: true}.StructuredData()
	assert.Equal(t, "10", sd[SDIDSeed]["users"])
	assert.Equal(t, "6", sd[SDIDSeed]["comments"])
	assert.Equal(t, "success", sd[SDIDAction]["result"])
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", `"simple"`},
		{`with"quote`, `"with\"quote"`},
		{`with\backslash`, `"with\\backslash"`},
		{"with]bracket", `"with\]bracket"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeSDValue(tt.input))
	}
}

func TestFormatStructuredDataIsSorted(t *testing.T) {
	out := formatStructuredData(map[string]map[string]string{
		"b@1": {"z": "1", "a": "2"},
		"a@1": {"k": "v"},
	})
	assert.Equal(t, `[a@1 k="v"][b@1 a="2" z="1"]`, out)
	assert.Empty(t, formatStructuredData(nil))
	assert.True(t, strings.HasPrefix(formatStructuredData(map[string]map[string]string{"x@1": {}}), "[x@1"))
}
