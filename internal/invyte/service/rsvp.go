package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/store"
	"github.com/aussiebroadwan/invyte/pkg/slogx"
)

// RespondRequest is a guest's answer to an invitation. UserID and
// PhoneNumber come from the authenticated caller. A nil GiftOption leaves
// the guest's gift choice and claim untouched.
type RespondRequest struct {
	EventID         string
	UserID          string
	PhoneNumber     string
	RSVPStatus      string
	GiftOption      *string
	WishlistItemIDs []string
}

// ClaimResult is the outcome of claiming one requested item. Exactly one of
// Claim and Err is set.
type ClaimResult struct {
	ItemID string
	Claim  *ClaimRecord
	Err    error
}

func (r ClaimResult) OK() bool { return r.Err == nil }

// RespondResult carries the updated guest and one ClaimResult per requested
// item, in request order.
type RespondResult struct {
	Guest  domain.Guest
	Claims []ClaimResult
}

// Partial reports whether some requested claims succeeded and others failed.
func (r RespondResult) Partial() bool {
	var ok, failed bool
	for _, c := range r.Claims {
		if c.OK() {
			ok = true
		} else {
			failed = true
		}
	}
	return ok && failed
}

// RSVPStatusView is a guest's current answer and gift state.
type RSVPStatusView struct {
	RSVPStatus     domain.RSVPStatus
	InviteStatus   domain.InviteStatus
	GiftOption     *domain.GiftOption
	WishlistItemID *string
	RespondedAt    *time.Time
	GiftClaims     []domain.WishlistItem
}

// RSVPService owns rsvp_status, gift_option and the guest's claim pointer.
// Claims go through the WishlistService.
type RSVPService struct {
	Store    store.Store
	Wishlist *WishlistService
	Outbox   *Outbox
	Now      func() time.Time
}

func (s *RSVPService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Respond records the guest's answer and applies their gift choice.
//
// Choosing anything but "gift" releases a held claim. Choosing "gift" releases
// a held claim that is not among the requested items and then claims each
// requested item in order. A failed claim does not undo earlier ones; the
// first success becomes the guest's claim pointer.
func (s *RSVPService) Respond(ctx context.Context, req RespondRequest) (RespondResult, error) {
	log := slogx.FromContext(ctx).With(slog.String("event_id", req.EventID))

	status, ok := domain.ParseRSVPStatus(req.RSVPStatus)
	if !ok {
		return RespondResult{}, ErrInvalidRSVPStatus
	}

	var (
		option    domain.GiftOption
		hasOption = req.GiftOption != nil
		itemIDs   = cleanIDs(req.WishlistItemIDs)
	)
	if hasOption {
		option, ok = domain.ParseGiftOption(*req.GiftOption)
		if !ok {
			return RespondResult{}, ErrInvalidGiftOption
		}
		if option == domain.GiftWishlist && len(itemIDs) == 0 {
			return RespondResult{}, ErrGiftItemRequired
		}
	}

	guest, err := s.activeGuest(ctx, req.EventID, req.PhoneNumber)
	if err != nil {
		return RespondResult{}, err
	}

	var claims []ClaimResult
	if hasOption {
		if held := guest.WishlistItemID; held != nil {
			if option != domain.GiftWishlist || !slices.Contains(itemIDs, *held) {
				if _, err := s.Wishlist.Release(ctx, *held); err != nil && !errors.Is(err, ErrItemNotFound) {
					log.Error("failed to release previous claim",
						slog.String("item_id", *held),
						slog.Any("error", err),
					)
					return RespondResult{}, err
				}
			}
		}
		guest.WishlistItemID = nil

		if option == domain.GiftWishlist {
			claims = make([]ClaimResult, 0, len(itemIDs))
			for _, id := range itemIDs {
				rec, err := s.Wishlist.Claim(ctx, req.UserID, req.EventID, id)
				if err != nil {
					log.Warn("claim failed", slog.String("item_id", id), slog.Any("error", err))
					claims = append(claims, ClaimResult{ItemID: id, Err: err})
					continue
				}
				claims = append(claims, ClaimResult{ItemID: id, Claim: &rec})
				if guest.WishlistItemID == nil {
					first := id
					guest.WishlistItemID = &first
				}
			}
		}
		guest.GiftOption = &option
	}

	now := s.now()
	guest.RSVPStatus = status
	guest.RespondedAt = &now
	if status == domain.RSVPYes {
		guest.InviteStatus = domain.InviteStatusJoined
	}

	if err := s.Store.Guests().UpdateGuestResponse(ctx, guest); err != nil {
		log.Error("failed to record rsvp", slog.String("guest_id", guest.ID), slog.Any("error", err))
		return RespondResult{}, err
	}

	log.Info("rsvp recorded",
		slog.String("guest_id", guest.ID),
		slog.String("rsvp", string(status)),
	)

	s.notifyHost(ctx, req.EventID, guest)

	updated, err := s.Store.Guests().GetGuestByPhone(ctx, req.EventID, guest.PhoneNumber)
	if err != nil {
		return RespondResult{}, err
	}
	return RespondResult{Guest: updated, Claims: claims}, nil
}

// Status returns the caller's current answer in the event. Active claims are
// listed only while the gift option is "gift".
func (s *RSVPService) Status(ctx context.Context, eventID, userID, phone string) (RSVPStatusView, error) {
	guest, err := s.activeGuest(ctx, eventID, phone)
	if err != nil {
		return RSVPStatusView{}, err
	}

	view := RSVPStatusView{
		RSVPStatus:     guest.RSVPStatus,
		InviteStatus:   guest.InviteStatus,
		GiftOption:     guest.GiftOption,
		WishlistItemID: guest.WishlistItemID,
		RespondedAt:    guest.RespondedAt,
		GiftClaims:     []domain.WishlistItem{},
	}

	if guest.GiftOption != nil && *guest.GiftOption == domain.GiftWishlist {
		claims, err := s.Store.Wishlist().ListClaimsByUser(ctx, eventID, userID)
		if err != nil {
			slogx.FromContext(ctx).Error("failed to list gift claims", slog.Any("error", err))
			return RSVPStatusView{}, err
		}
		view.GiftClaims = claims
	}
	return view, nil
}

// activeGuest finds the caller on the event roster. Removed guests are not
// on the roster.
func (s *RSVPService) activeGuest(ctx context.Context, eventID, phone string) (domain.Guest, error) {
	guest, err := s.Store.Guests().GetGuestByPhone(ctx, eventID, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Guest{}, ErrGuestNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch guest", slog.Any("error", err))
		return domain.Guest{}, err
	}
	if guest.Removed() {
		return domain.Guest{}, ErrGuestNotFound
	}
	return guest, nil
}

func (s *RSVPService) notifyHost(ctx context.Context, eventID string, guest domain.Guest) {
	if s.Outbox == nil {
		return
	}
	log := slogx.FromContext(ctx)

	event, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		log.Warn("failed to load event for rsvp notification", slog.Any("error", err))
		return
	}
	host, err := s.Store.Users().GetUserByID(ctx, event.HostID)
	if err != nil {
		log.Warn("failed to load host for rsvp notification", slog.Any("error", err))
		return
	}
	s.Outbox.EnqueueRSVP(ctx, host.PhoneNumber, guest.Name, guest.RSVPStatus, event)
}

// cleanIDs trims ids and drops blanks, keeping order.
func cleanIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
