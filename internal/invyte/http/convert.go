package http

import (
	"errors"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/service"
	"github.com/aussiebroadwan/invyte/pkg/invytesdk"
)

func toUser(u domain.User) invytesdk.User {
	return invytesdk.User{
		ID:          u.ID,
		PhoneNumber: u.PhoneNumber,
		Name:        u.Name,
		CreatedAt:   u.CreatedAt,
	}
}

func toGuest(g domain.Guest) invytesdk.Guest {
	out := invytesdk.Guest{
		ID:           g.ID,
		PhoneNumber:  g.PhoneNumber,
		Name:         g.Name,
		InviteStatus: string(g.InviteStatus),
		RSVPStatus:   string(g.RSVPStatus),
		WishlistID:   g.WishlistItemID,
		InvitedAt:    g.InvitedAt,
		RespondedAt:  g.RespondedAt,
	}
	if g.GiftOption != nil {
		opt := string(*g.GiftOption)
		out.GiftOption = &opt
	}
	return out
}

func toGuests(gs []domain.Guest) []invytesdk.Guest {
	out := make([]invytesdk.Guest, 0, len(gs))
	for _, g := range gs {
		out = append(out, toGuest(g))
	}
	return out
}

func toItem(w domain.WishlistItem) invytesdk.WishlistItem {
	out := invytesdk.WishlistItem{
		ID:         w.ID,
		EventID:    w.EventID,
		Name:       w.Name,
		URL:        w.URL,
		ImageURL:   w.ImageURL,
		IsClaimed:  w.IsClaimed,
		ClaimedBy:  w.ClaimedBy,
		ClaimedAt:  w.ClaimedAt,
		ReleasedAt: w.ReleasedAt,
		CreatedAt:  w.CreatedAt,
	}
	if w.ClaimStatus != "" {
		status := string(w.ClaimStatus)
		out.ClaimStatus = &status
	}
	return out
}

func toItems(ws []domain.WishlistItem) []invytesdk.WishlistItem {
	out := make([]invytesdk.WishlistItem, 0, len(ws))
	for _, w := range ws {
		out = append(out, toItem(w))
	}
	return out
}

func toEvent(v service.EventView) invytesdk.Event {
	e := v.Event
	return invytesdk.Event{
		ID:          e.ID,
		HostID:      e.HostID,
		HostName:    v.HostName,
		Title:       e.Title,
		Description: e.Description,
		Venue:       e.Venue,
		Theme:       e.Theme,
		EventDate:   e.EventDate,
		Status:      string(e.Status),
		InviteLink:  e.InviteLink,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Guestlist:   toGuests(v.Guests),
		Wishlist:    toItems(v.Wishlist),
	}
}

func toEvents(vs []service.EventView) []invytesdk.Event {
	out := make([]invytesdk.Event, 0, len(vs))
	for _, v := range vs {
		out = append(out, toEvent(v))
	}
	return out
}

// toGuestInputs keeps nil as nil so an omitted guest list stays omitted.
func toGuestInputs(in []invytesdk.GuestInput) []service.GuestInput {
	if in == nil {
		return nil
	}
	out := make([]service.GuestInput, 0, len(in))
	for _, g := range in {
		out = append(out, service.GuestInput{Name: g.Name, PhoneNumber: g.PhoneNumber})
	}
	return out
}

func toItemInputs(in []invytesdk.ItemInput) []service.ItemInput {
	if in == nil {
		return nil
	}
	out := make([]service.ItemInput, 0, len(in))
	for _, it := range in {
		out = append(out, service.ItemInput{Name: it.Name, URL: it.URL, ImageURL: it.ImageURL})
	}
	return out
}

func toClaimResults(rs []service.ClaimResult) []invytesdk.ClaimResult {
	out := make([]invytesdk.ClaimResult, 0, len(rs))
	for _, r := range rs {
		cr := invytesdk.ClaimResult{WishlistItemID: r.ItemID, Claimed: r.OK()}
		if r.OK() {
			at := r.Claim.ClaimedAt
			cr.ClaimedAt = &at
			cr.ClaimStatus = string(r.Claim.ClaimStatus)
		} else {
			cr.Error = claimError(r.Err)
		}
		out = append(out, cr)
	}
	return out
}

// claimError exposes only item-level failures; anything else is logged by
// the service and reported generically.
func claimError(err error) string {
	if errors.Is(err, service.ErrItemNotFound) {
		return service.ErrItemNotFound.Error()
	}
	return invytesdk.ErrorCodeServerError
}
