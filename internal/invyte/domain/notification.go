package domain

import "time"

type NotificationKind string

const (
	NotificationInvite NotificationKind = "invite"
	NotificationRSVP   NotificationKind = "rsvp"
)

type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// Notification is an outbox row. Payload holds the template variables
// (inviter, event, link for invites; guest, rsvp, event for replies).
type Notification struct {
	ID        string
	Kind      NotificationKind
	Recipient string
	Payload   map[string]string
	Status    NotificationStatus
	Attempts  int
	LastError string
	CreatedAt time.Time
	SentAt    *time.Time
}
