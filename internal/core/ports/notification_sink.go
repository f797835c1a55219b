package ports

import "context"

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
)

// NotificationSink delivers advisory messages. It is fire-and-forget: callers
// never wait for, or react to, delivery.
type NotificationSink interface {
	Notify(ctx context.Context, message string, severity Severity)
}
