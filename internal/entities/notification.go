package entities

import "time"

type EventKind string

const (
	EventKindStateChanged EventKind = "state_changed"
	EventKindFault        EventKind = "fault"
)

// NotificationEvent is a one-shot message for external observers. It is never
// retained by the control path and never replayed.
type NotificationEvent struct {
	Kind      EventKind `json:"kind"`
	Payload   string    `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

func NewStateChangedEvent(payload string, at time.Time) NotificationEvent {
	return NotificationEvent{
		Kind:      EventKindStateChanged,
		Payload:   payload,
		Timestamp: at,
	}
}

func NewFaultEvent(payload string, at time.Time) NotificationEvent {
	return NotificationEvent{
		Kind:      EventKindFault,
		Payload:   payload,
		Timestamp: at,
	}
}
