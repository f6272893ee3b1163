package ports

import (
	"context"
	"time"
)

// AuthEventInput describes one login attempt for the audit trail.
type AuthEventInput struct {
	Username  string
	UserID    int
	Outcome   string
	RemoteIP  string
	Timestamp time.Time
}

// AuditSink persists audit events.
type AuditSink interface {
	Record(ctx context.Context, event AuthEventInput) error
}

// AuditTrail accepts events for asynchronous recording.
type AuditTrail interface {
	Enqueue(event AuthEventInput)
}
