package domain

import "time"

type EventStatus string

const (
	EventStatusDraft EventStatus = "draft"
	EventStatusLive  EventStatus = "live"
)

type Event struct {
	ID          string
	HostID      string
	Title       string
	Description string
	Venue       string
	Theme       string
	EventDate   *time.Time
	Status      EventStatus
	InviteLink  string // opaque token, unique across events
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
