package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes captured events to an slog.Logger at debug level, or at
// warn level for errors.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates an adapter over logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	level := slog.LevelDebug
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Interface != "" {
		attrs = append(attrs, slog.String("iface", event.Interface))
	}
	if event.PHY != "" {
		attrs = append(attrs, slog.String("phy", event.PHY))
	}

	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Link != nil:
		attrs = append(attrs, slog.String("kind", event.Link.Kind))
		if event.Link.Addr != "" {
			attrs = append(attrs,
				slog.String("ip", event.Link.Addr),
				slog.String("mask", event.Link.Mask),
				slog.String("gateway", event.Link.Gateway),
			)
		}
		if event.Link.PostError != "" {
			level = slog.LevelWarn
			attrs = append(attrs, slog.String("post_error", event.Link.PostError))
		}
	case event.Error != nil:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("code", event.Error.Code),
			slog.String("op", event.Error.Op),
			slog.Bool("fatal", event.Error.Fatal),
		)
		if event.Error.DriverStatus != nil {
			attrs = append(attrs, slog.Int("driver_status", *event.Error.DriverStatus))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "capture", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
