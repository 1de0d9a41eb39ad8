package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes instrument events to an slog.Logger.
// Useful for development when you want to see instrument traffic in console.
// Verification mismatches are logged at Warn level, errors at Error level,
// everything else at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	// Add optional identifiers
	if event.SessionID != "" {
		attrs = append(attrs, slog.String("session_id", event.SessionID))
	}
	if event.Device != "" {
		attrs = append(attrs, slog.String("device", event.Device))
	}
	if event.Feature != "" {
		attrs = append(attrs, slog.String("feature", event.Feature))
	}

	level := slog.LevelDebug

	// Add type-specific attributes
	switch {
	case event.Register != nil:
		attrs = append(attrs,
			slog.Uint64("address", uint64(event.Register.Address)),
			slog.Int64("raw", int64(event.Register.Raw)),
		)
	case event.Query != nil:
		attrs = append(attrs, slog.String("command", event.Query.Command))
		if event.Query.Response != "" {
			attrs = append(attrs, slog.String("response", event.Query.Response))
		}
	case event.Verify != nil:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("requested", event.Verify.Requested),
			slog.String("actual", event.Verify.Actual),
		)
	case event.State != nil:
		attrs = append(attrs,
			slog.String("entity", event.State.Entity.String()),
			slog.String("old_state", event.State.OldState),
			slog.String("new_state", event.State.NewState),
		)
		if event.State.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.State.Reason))
		}
	case event.Error != nil:
		level = slog.LevelError
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "instrument", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
