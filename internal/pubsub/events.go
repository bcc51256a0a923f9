package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// TopicAppEvents carries every state change of every visitor application.
const TopicAppEvents = "app.events"

// Event types published on TopicAppEvents.
const (
	EventAppStarted    = "app.started"
	EventAppEvicted    = "app.evicted"
	EventNavigated     = "page.navigated"
	EventMenuToggled   = "menu.toggled"
	EventFormSubmitted = "form.submitted"
	EventFormSucceeded = "form.succeeded"
	EventFormFailed    = "form.failed"
	EventFormDiscarded = "form.discarded"
)

// AppEvent is the JSON payload of a message on TopicAppEvents.
type AppEvent struct {
	Type  string    `json:"type"`
	AppID string    `json:"app_id"`
	From  string    `json:"from,omitempty"`
	To    string    `json:"to,omitempty"`
	Form  string    `json:"form,omitempty"`
	At    time.Time `json:"at"`
	// Background is true when the change did not originate from a request of the
	// visitor (e.g. the end of a simulated round trip) and must be pushed to the browser.
	Background bool `json:"background,omitempty"`
}

// PublishAppEvent encodes ev and publishes it on TopicAppEvents.
func PublishAppEvent(ctx context.Context, pub Publisher, ev AppEvent) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", ev.Type, err)
	}
	return pub.Publish(ctx, Message{
		Topic:   TopicAppEvents,
		AppID:   ev.AppID,
		Payload: payload,
		Metadata: map[string]string{
			"event_type": ev.Type,
		},
	})
}

// DecodeAppEvent parses the payload of a TopicAppEvents message.
func DecodeAppEvent(msg Message) (AppEvent, error) {
	var ev AppEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return AppEvent{}, fmt.Errorf("decode app event: %w", err)
	}
	return ev, nil
}
