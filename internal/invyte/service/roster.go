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

// GuestInput is one entry of a host-submitted guest list.
type GuestInput struct {
	Name        string
	PhoneNumber string
}

// RosterService owns roster membership and invite status.
type RosterService struct {
	Store  store.Store
	Outbox *Outbox
	Now    func() time.Time
}

func (s *RosterService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Reconcile makes the event's active roster match guests. Guests missing from
// the submission are marked removed, never deleted, so their RSVP survives.
// Removed guests that come back are re-invited with their RSVP intact.
// An empty (non-nil) slice removes everyone. The full roster, removed guests
// included, is returned in creation order.
func (s *RosterService) Reconcile(ctx context.Context, eventID string, guests []GuestInput) ([]domain.Guest, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", eventID))

	phones, names, err := collapseGuestList(guests)
	if err != nil {
		return nil, err
	}

	event, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		log.Error("failed to fetch event", slog.Any("error", err))
		return nil, err
	}

	current, err := s.Store.Guests().ListGuestsByEvent(ctx, eventID)
	if err != nil {
		log.Error("failed to list roster", slog.Any("error", err))
		return nil, err
	}

	known := make(map[string]domain.Guest, len(current))
	for _, g := range current {
		known[g.PhoneNumber] = g
	}

	now := s.now()
	var invitees []string

	for _, g := range current {
		if _, keep := names[g.PhoneNumber]; keep || g.Removed() {
			continue
		}
		if err := s.Store.Guests().SetGuestInviteStatus(ctx, g.ID, domain.InviteStatusRemoved, now); err != nil {
			log.Error("failed to remove guest", slog.String("guest_id", g.ID), slog.Any("error", err))
			return nil, err
		}
		log.Info("guest removed", slog.String("guest_id", g.ID))
	}

	for _, phone := range phones {
		name := names[phone]

		g, ok := known[phone]
		if !ok {
			guest := domain.Guest{
				ID:           idx.New().String(),
				EventID:      eventID,
				PhoneNumber:  phone,
				Name:         name,
				InviteStatus: domain.InviteStatusInvited,
				RSVPStatus:   domain.RSVPPending,
				InvitedAt:    now,
			}
			if err := s.Store.Guests().CreateGuest(ctx, guest); err != nil {
				log.Error("failed to create guest", slog.Any("error", err))
				return nil, err
			}
			log.Info("guest invited", slog.String("guest_id", guest.ID))
			invitees = append(invitees, phone)
			continue
		}

		if g.Name != name {
			if err := s.Store.Guests().UpdateGuestName(ctx, g.ID, name); err != nil {
				log.Error("failed to rename guest", slog.String("guest_id", g.ID), slog.Any("error", err))
				return nil, err
			}
		}

		if g.Removed() {
			if err := s.Store.Guests().SetGuestInviteStatus(ctx, g.ID, domain.InviteStatusInvited, now); err != nil {
				log.Error("failed to re-invite guest", slog.String("guest_id", g.ID), slog.Any("error", err))
				return nil, err
			}
			log.Info("guest re-invited", slog.String("guest_id", g.ID))
			invitees = append(invitees, phone)
		}
	}

	if len(invitees) > 0 {
		inviter := s.hostName(ctx, event)
		for _, phone := range invitees {
			s.Outbox.EnqueueInvite(ctx, phone, inviter, event)
		}
	}

	return s.Store.Guests().ListGuestsByEvent(ctx, eventID)
}

func (s *RosterService) hostName(ctx context.Context, event domain.Event) string {
	host, err := s.Store.Users().GetUserByID(ctx, event.HostID)
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to resolve host for invite",
			slog.String("host_id", event.HostID),
			slog.Any("error", err),
		)
		return ""
	}
	return displayName(host)
}

// collapseGuestList trims and validates every entry. Repeated phone numbers
// keep their first position and their last name.
func collapseGuestList(guests []GuestInput) ([]string, map[string]string, error) {
	phones := make([]string, 0, len(guests))
	names := make(map[string]string, len(guests))

	for _, in := range guests {
		name := strings.TrimSpace(in.Name)
		phone := strings.TrimSpace(in.PhoneNumber)
		if name == "" || phone == "" {
			return nil, nil, ErrInvalidGuestList
		}
		if _, seen := names[phone]; !seen {
			phones = append(phones, phone)
		}
		names[phone] = name
	}
	return phones, names, nil
}
