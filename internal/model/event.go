package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// EventKind is the event name a frame client sends in the signed payload.
type EventKind string

const (
	EventFrameAdded            EventKind = "frame_added"
	EventFrameRemoved          EventKind = "frame_removed"
	EventNotificationsEnabled  EventKind = "notifications_enabled"
	EventNotificationsDisabled EventKind = "notifications_disabled"
)

var ErrInvalidEvent = errors.New("invalid event data")

var validate = validator.New(validator.WithRequiredStructEnabled())

// CapabilityEvent is a verified capability change for one subscriber.
type CapabilityEvent struct {
	SubscriberID int64
	Kind         EventKind
	Details      *NotificationDetails
}

type eventPayload struct {
	Event               EventKind            `json:"event" validate:"required,oneof=frame_added frame_removed notifications_enabled notifications_disabled"`
	NotificationDetails *NotificationDetails `json:"notificationDetails" validate:"-"`
}

// DecodeCapabilityEvent parses the decoded payload of a signed frame event.
// Details are mandatory for notifications_enabled, optional for frame_added and
// ignored for the other kinds.
func DecodeCapabilityEvent(subscriberID int64, data []byte) (CapabilityEvent, error) {
	var p eventPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return CapabilityEvent{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := validate.Struct(p); err != nil {
		return CapabilityEvent{}, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	ev := CapabilityEvent{SubscriberID: subscriberID, Kind: p.Event}

	switch p.Event {
	case EventNotificationsEnabled:
		if p.NotificationDetails == nil {
			return CapabilityEvent{}, fmt.Errorf("%w: notificationDetails is required for %s", ErrInvalidEvent, p.Event)
		}
		fallthrough
	case EventFrameAdded:
		if p.NotificationDetails != nil {
			if err := validate.Struct(p.NotificationDetails); err != nil {
				return CapabilityEvent{}, fmt.Errorf("%w: notificationDetails: %v", ErrInvalidEvent, err)
			}
			details := *p.NotificationDetails
			ev.Details = &details
		}
	}

	return ev, nil
}
