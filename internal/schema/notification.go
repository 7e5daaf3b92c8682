package schema

import (
	"fmt"
	"time"
)

type NotificationKind string

const (
	NotificationCreate   NotificationKind = "create"
	NotificationCancel   NotificationKind = "cancel"
	NotificationChange   NotificationKind = "change"
	NotificationReminder NotificationKind = "reminder"
)

// ParseNotificationKind maps a webhook's notification_type field to a kind.
// An empty value defaults to a create notification, matching the scheduling
// service's own webhook behaviour.
func ParseNotificationKind(value string) (NotificationKind, error) {
	switch NotificationKind(value) {
	case NotificationCreate, NotificationCancel, NotificationChange, NotificationReminder:
		return NotificationKind(value), nil
	case "":
		return NotificationCreate, nil
	}

	return "", fmt.Errorf("unknown notification type %q", value)
}

// NotificationRequest is constructed and consumed within a single dispatch.
type NotificationRequest struct {
	RecipientPhone string
	RecipientName  string
	Kind           NotificationKind
	StartsAt       time.Time
	Location       string
}

// BookingEvent is the reactive webhook payload.
type BookingEvent struct {
	BookingID        string `json:"booking_id" binding:"required"`
	BookingHash      string `json:"booking_hash" binding:"required"`
	NotificationType string `json:"notification_type"`
}

// ScanSummary reports the outcome of one scheduled reminder scan.
type ScanSummary struct {
	Bookings      int      `json:"bookings"`
	UniqueClients int      `json:"uniqueClients"`
	Sent          int      `json:"sent"`
	Skipped       int      `json:"skipped"`
	Failed        int      `json:"failed"`
	Notified      []string `json:"notified"`
}
