package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/store"
	"github.com/aussiebroadwan/invyte/pkg/idx"
	"github.com/aussiebroadwan/invyte/pkg/slogx"
)

// EventView is an event with its host's display name, roster and wishlist.
// HostName is nil when the host has not set a name.
type EventView struct {
	Event    domain.Event
	HostName *string
	Guests   []domain.Guest
	Wishlist []domain.WishlistItem
}

// EventInput creates an event. A nil Guests leaves the roster empty.
type EventInput struct {
	Title       string
	Description string
	Venue       string
	Theme       string
	EventDate   *time.Time
	Guests      []GuestInput
	Wishlist    []ItemInput
}

// EventPatch updates an event. Nil fields are left alone; a non-nil empty
// Guests or Wishlist clears that collection.
type EventPatch struct {
	Title       *string
	Description *string
	Venue       *string
	Theme       *string
	EventDate   *time.Time
	Status      *string
	Guests      []GuestInput
	Wishlist    []ItemInput
}

type EventService struct {
	Store    store.Store
	Roster   *RosterService
	Wishlist *WishlistService
}

// Get composes the full view of one event.
func (s *EventService) Get(ctx context.Context, eventID string) (EventView, error) {
	event, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return EventView{}, ErrEventNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch event", slog.String("event_id", eventID), slog.Any("error", err))
		return EventView{}, err
	}
	return s.compose(ctx, event)
}

// GetByInviteLink composes the view of the event an invite token points at.
func (s *EventService) GetByInviteLink(ctx context.Context, token string) (EventView, error) {
	event, err := s.Store.Events().GetEventByInviteLink(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return EventView{}, ErrEventNotFound
		}
		slogx.FromContext(ctx).Error("failed to resolve invite link", slog.Any("error", err))
		return EventView{}, err
	}
	return s.compose(ctx, event)
}

// ListForUser returns the events the user hosts and the events they are
// invited to (and not removed from).
func (s *EventService) ListForUser(ctx context.Context, userID, phone string) (hosting, invited []EventView, err error) {
	log := slogx.FromContext(ctx)

	hosted, err := s.Store.Events().ListEventsByHost(ctx, userID)
	if err != nil {
		log.Error("failed to list hosted events", slog.Any("error", err))
		return nil, nil, err
	}
	guestOf, err := s.Store.Events().ListEventsByGuestPhone(ctx, phone)
	if err != nil {
		log.Error("failed to list invited events", slog.Any("error", err))
		return nil, nil, err
	}

	hosting = make([]EventView, 0, len(hosted))
	for _, e := range hosted {
		v, err := s.compose(ctx, e)
		if err != nil {
			return nil, nil, err
		}
		hosting = append(hosting, v)
	}

	invited = make([]EventView, 0, len(guestOf))
	for _, e := range guestOf {
		v, err := s.compose(ctx, e)
		if err != nil {
			return nil, nil, err
		}
		invited = append(invited, v)
	}
	return hosting, invited, nil
}

// Create makes a live event with a fresh invite link. Guests and wishlist
// items are validated before the event is written.
func (s *EventService) Create(ctx context.Context, hostID string, in EventInput) (EventView, error) {
	log := slogx.FromContext(ctx)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return EventView{}, ErrInvalidEvent
	}
	if _, _, err := collapseGuestList(in.Guests); err != nil {
		return EventView{}, err
	}
	if _, err := validateItems(in.Wishlist); err != nil {
		return EventView{}, err
	}

	event := domain.Event{
		ID:          idx.New().String(),
		HostID:      hostID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Venue:       strings.TrimSpace(in.Venue),
		Theme:       strings.TrimSpace(in.Theme),
		EventDate:   in.EventDate,
		Status:      domain.EventStatusLive,
		InviteLink:  idx.NewToken(),
	}
	if err := s.Store.Events().CreateEvent(ctx, event); err != nil {
		log.Error("failed to create event", slog.Any("error", err))
		return EventView{}, err
	}
	log.Info("event created", slog.String("event_id", event.ID))

	if len(in.Guests) > 0 {
		if _, err := s.Roster.Reconcile(ctx, event.ID, in.Guests); err != nil {
			return EventView{}, err
		}
	}
	if len(in.Wishlist) > 0 {
		if _, err := s.Wishlist.AddToEvent(ctx, event.ID, in.Wishlist); err != nil {
			return EventView{}, err
		}
	}

	return s.Get(ctx, event.ID)
}

// Update applies patch to an event hosted by hostID. Events hosted by
// someone else are reported as not found.
func (s *EventService) Update(ctx context.Context, eventID, hostID string, patch EventPatch) (EventView, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", eventID))

	event, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return EventView{}, ErrEventNotFound
		}
		log.Error("failed to fetch event", slog.Any("error", err))
		return EventView{}, err
	}
	if event.HostID != hostID {
		log.Warn("event update by non-host")
		return EventView{}, ErrEventNotFound
	}

	if patch.Guests != nil {
		if _, _, err := collapseGuestList(patch.Guests); err != nil {
			return EventView{}, err
		}
	}
	if patch.Wishlist != nil {
		if _, err := validateItems(patch.Wishlist); err != nil {
			return EventView{}, err
		}
	}

	changed, err := applyPatch(&event, patch)
	if err != nil {
		return EventView{}, err
	}
	if changed {
		if err := s.Store.Events().UpdateEvent(ctx, event); err != nil {
			log.Error("failed to update event", slog.Any("error", err))
			return EventView{}, err
		}
	}

	if patch.Guests != nil {
		if _, err := s.Roster.Reconcile(ctx, eventID, patch.Guests); err != nil {
			return EventView{}, err
		}
	}
	if patch.Wishlist != nil {
		if _, err := s.Wishlist.ReplaceEventWishlist(ctx, eventID, patch.Wishlist); err != nil {
			return EventView{}, err
		}
	}

	return s.Get(ctx, eventID)
}

func applyPatch(e *domain.Event, p EventPatch) (bool, error) {
	changed := false
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return false, ErrInvalidEvent
		}
		e.Title = title
		changed = true
	}
	if p.Description != nil {
		e.Description = strings.TrimSpace(*p.Description)
		changed = true
	}
	if p.Venue != nil {
		e.Venue = strings.TrimSpace(*p.Venue)
		changed = true
	}
	if p.Theme != nil {
		e.Theme = strings.TrimSpace(*p.Theme)
		changed = true
	}
	if p.EventDate != nil {
		e.EventDate = p.EventDate
		changed = true
	}
	if p.Status != nil {
		switch status := domain.EventStatus(strings.ToLower(strings.TrimSpace(*p.Status))); status {
		case domain.EventStatusDraft, domain.EventStatusLive:
			e.Status = status
			changed = true
		default:
			return false, ErrInvalidEvent
		}
	}
	return changed, nil
}

func (s *EventService) compose(ctx context.Context, event domain.Event) (EventView, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", event.ID))

	view := EventView{Event: event}

	host, err := s.Store.Users().GetUserByID(ctx, event.HostID)
	switch {
	case err == nil:
		view.HostName = host.Name
	case errors.Is(err, store.ErrNotFound):
		log.Warn("event host missing", slog.String("host_id", event.HostID))
	default:
		log.Error("failed to fetch host", slog.Any("error", err))
		return EventView{}, err
	}

	view.Guests, err = s.Store.Guests().ListGuestsByEvent(ctx, event.ID)
	if err != nil {
		log.Error("failed to list roster", slog.Any("error", err))
		return EventView{}, err
	}
	if view.Guests == nil {
		view.Guests = []domain.Guest{}
	}

	view.Wishlist, err = s.Store.Wishlist().ListItemsByEvent(ctx, event.ID)
	if err != nil {
		log.Error("failed to list wishlist", slog.Any("error", err))
		return EventView{}, err
	}
	if view.Wishlist == nil {
		view.Wishlist = []domain.WishlistItem{}
	}

	return view, nil
}
