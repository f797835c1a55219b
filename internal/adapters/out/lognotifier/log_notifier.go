// Package lognotifier writes notifications to the structured log. It is the
// notification sink used when no message broker is configured.
package lognotifier

import (
	"context"
	"log/slog"

	"workorders/internal/core/ports"
)

type LogNotifier struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifications")}
}

func (n *LogNotifier) Notify(ctx context.Context, message string, severity ports.Severity) {
	level := slog.LevelInfo
	if severity == ports.SeverityWarning {
		level = slog.LevelWarn
	}
	n.logger.Log(ctx, level, message, "severity", string(severity))
}
