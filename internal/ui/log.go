package ui

import (
	"context"
	"log/slog"
)

// LogNotifier implements Notifier on the process log, for headless runs and
// tests where no table UI is connected.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Info logs an informational notice
func (n *LogNotifier) Info(ctx context.Context, message string) {
	slog.InfoContext(ctx, message)
}

// Warn logs a warning notice
func (n *LogNotifier) Warn(ctx context.Context, message string) {
	slog.WarnContext(ctx, message)
}

// Error logs an error notice
func (n *LogNotifier) Error(ctx context.Context, message string) {
	slog.ErrorContext(ctx, message)
}

// LogChatPoster implements ChatPoster on the process log
type LogChatPoster struct{}

// NewLogChatPoster creates a log-backed chat poster
func NewLogChatPoster() *LogChatPoster {
	return &LogChatPoster{}
}

// PostCraftingCheck logs the crafting-check record
func (p *LogChatPoster) PostCraftingCheck(ctx context.Context, record *CraftingCheckRecord) error {
	slog.InfoContext(ctx, "crafting check",
		"actor", record.ActorName,
		"item", record.ItemName,
		"level", record.Level,
		"dc", record.DC,
		"outcome", string(record.Outcome),
	)
	return nil
}
