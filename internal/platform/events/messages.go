package events

import (
	"encoding/json"
	"time"
)

// EventKind identifies the notification event type.
type EventKind string

const (
	KindAnnouncementPosted EventKind = "announcement.posted"
	KindApprovalRequested  EventKind = "transaction.approval_requested"
	KindTransactionSettled EventKind = "transaction.settled"
)

// NotificationEvent is the JSON payload published to the broker. Consumers
// fetch the full entity from the API; the event carries identifiers only.
type NotificationEvent struct {
	Kind       EventKind `json:"kind"`
	EntityID   string    `json:"entityID"`
	ActorID    string    `json:"actorID"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewNotificationEvent creates an event stamped with the current time.
func NewNotificationEvent(kind EventKind, entityID, actorID string) NotificationEvent {
	return NotificationEvent{
		Kind:       kind,
		EntityID:   entityID,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e NotificationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// NotificationEventFromJSON decodes an event from JSON bytes.
func NotificationEventFromJSON(data []byte) (*NotificationEvent, error) {
	var e NotificationEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
