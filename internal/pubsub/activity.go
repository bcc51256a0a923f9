package pubsub

import (
	"context"
	"log/slog"
)

// LogActivity subscribes to TopicAppEvents and writes one log record per event.
// App lifecycle and submissions are logged at info, everything else at debug.
func LogActivity(ctx context.Context, sub Subscriber, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "activity")

	return sub.Subscribe(ctx, TopicAppEvents, func(ctx context.Context, msg Message) error {
		ev, err := DecodeAppEvent(msg)
		if err != nil {
			return err
		}

		level := slog.LevelDebug
		switch ev.Type {
		case EventAppStarted, EventAppEvicted, EventFormSubmitted, EventFormSucceeded, EventFormFailed:
			level = slog.LevelInfo
		}

		attrs := []any{"type", ev.Type, "app_id", ev.AppID}
		if ev.From != "" || ev.To != "" {
			attrs = append(attrs, "from", ev.From, "to", ev.To)
		}
		if ev.Form != "" {
			attrs = append(attrs, "form", ev.Form)
		}
		if ev.Background {
			attrs = append(attrs, "background", true)
		}
		logger.Log(ctx, level, "App event", attrs...)
		return nil
	})
}
