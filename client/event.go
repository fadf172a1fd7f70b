package client

import (
	"time"

	ai "github.com/spetersoncode/chat"
)

// EventType identifies the kind of event occurring during client operations.
type EventType string

const (
	// EventSubmitStart fires when Submit is called, before validation.
	EventSubmitStart EventType = "submit_start"

	// EventStreamOpen fires once the provider accepted the request.
	EventStreamOpen EventType = "stream_open"

	// EventSubmitError fires when Submit returns an error.
	EventSubmitError EventType = "submit_error"

	// EventStreamEnd fires after the relay goroutine exits.
	EventStreamEnd EventType = "stream_end"
)

// Event represents an observable occurrence during client operations.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// RequestID correlates the events and log lines of one Submit call.
	RequestID string

	// Provider identifies which AI provider is being used (if known).
	Provider ai.Provider

	// Model is the model name being used (if known).
	Model string

	// Duration is the time elapsed since Submit was called.
	Duration time.Duration

	// Error holds the submit error, or the in-stream error for EventStreamEnd.
	Error error

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

func (e Event) with(t EventType) Event {
	e.Type = t
	return e
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
