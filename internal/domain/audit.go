package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LogType classifies audit events.
type LogType string

const (
	LogTypeAccess LogType = "access"
	LogTypeAction LogType = "action"
	LogTypeAudit  LogType = "audit"
)

// AsctimeLayout is the timestamp layout of persisted log lines.
// Lexicographic order of values in this layout equals chronological order.
const AsctimeLayout = "2006-01-02 15:04:05,000"

// AuditEvent is one access, action or audit record.
type AuditEvent struct {
	Message string
	Source  string
	LogType LogType
	Object  string
	At      time.Time
}

// UserObject formats the object reference of a user.
func UserObject(username string) string {
	return "user:" + username
}

// TweetObject formats the object reference of a tweet.
func TweetObject(id int64) string {
	return "tweet:" + strconv.FormatInt(id, 10)
}

// LogRecord is a decoded persisted log line.
type LogRecord map[string]any

// Field returns the string form of key, or "" when absent.
func (r LogRecord) Field(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// LogQuery filters log records. All criteria must hold.
//
//   - from, to: inclusive bounds on asctime, compared as strings
//   - message: case-insensitive substring
//   - any other key: exact match on that field, missing fields read as ""
type LogQuery struct {
	Criteria map[string]string
}

// Matches reports whether r satisfies every criterion of q.
func (q LogQuery) Matches(r LogRecord) bool {
	for key, want := range q.Criteria {
		switch key {
		case "from":
			if want > r.Field("asctime") {
				return false
			}
		case "to":
			if want < r.Field("asctime") {
				return false
			}
		case "message":
			if !strings.Contains(strings.ToLower(r.Field("message")), strings.ToLower(want)) {
				return false
			}
		default:
			if r.Field(key) != want {
				return false
			}
		}
	}
	return true
}

// Filter returns the records matching q, preserving order.
func (q LogQuery) Filter(records []LogRecord) []LogRecord {
	out := make([]LogRecord, 0)
	for _, r := range records {
		if q.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
