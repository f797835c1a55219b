package ports

import "context"

// ActivityLogSink records one line on the user-facing activity timeline.
type ActivityLogSink interface {
	Record(ctx context.Context, icon, summary string) error
}
