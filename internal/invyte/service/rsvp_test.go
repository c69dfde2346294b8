package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/stretchr/testify/require"
)

type rsvpCase struct {
	f     *fixture
	host  domain.User
	guest domain.User
	event domain.Event
}

func newRSVPCase(t *testing.T) rsvpCase {
	f := newFixture(t)
	host := f.user(t, "1110000000")
	guest := f.user(t, "9990001111")
	event := f.event(t, host, GuestInput{Name: "Gita", PhoneNumber: guest.PhoneNumber})
	return rsvpCase{f: f, host: host, guest: guest, event: event}
}

func (c rsvpCase) respond(t *testing.T, status string, gift *string, items ...string) RespondResult {
	t.Helper()
	res, err := c.f.rsvp.Respond(c.f.ctx, RespondRequest{
		EventID:         c.event.ID,
		UserID:          c.guest.ID,
		PhoneNumber:     c.guest.PhoneNumber,
		RSVPStatus:      status,
		GiftOption:      gift,
		WishlistItemIDs: items,
	})
	require.NoError(t, err)
	return res
}

func TestRespondYesWithGiftThenMaybeNoGift(t *testing.T) {
	c := newRSVPCase(t)
	w1 := c.f.item(t, c.event.ID, "Kettle")

	res := c.respond(t, "YES", ptr("gift"), w1.ID)
	require.Equal(t, domain.RSVPYes, res.Guest.RSVPStatus)
	require.Equal(t, domain.InviteStatusJoined, res.Guest.InviteStatus)
	require.NotNil(t, res.Guest.WishlistItemID)
	require.Equal(t, w1.ID, *res.Guest.WishlistItemID)
	require.Len(t, res.Claims, 1)
	require.True(t, res.Claims[0].OK())
	require.False(t, res.Partial())

	item := c.f.getItem(t, w1.ID)
	require.True(t, item.IsClaimed)
	require.Equal(t, c.guest.ID, *item.ClaimedBy)

	res = c.respond(t, "maybe", ptr("no gift"))
	require.Equal(t, domain.RSVPMaybe, res.Guest.RSVPStatus)
	require.Equal(t, domain.InviteStatusJoined, res.Guest.InviteStatus)
	require.Nil(t, res.Guest.WishlistItemID)
	require.Equal(t, domain.GiftNone, *res.Guest.GiftOption)
	require.Empty(t, res.Claims)

	item = c.f.getItem(t, w1.ID)
	require.False(t, item.IsClaimed)
	require.Nil(t, item.ClaimedBy)
}

func TestRespondPartialClaim(t *testing.T) {
	c := newRSVPCase(t)
	w1 := c.f.item(t, c.event.ID, "Kettle")

	other := c.f.event(t, c.host)
	foreign := c.f.item(t, other.ID, "Toaster")

	res := c.respond(t, "yes", ptr("gift"), w1.ID, foreign.ID)
	require.True(t, res.Partial())
	require.Len(t, res.Claims, 2)

	require.Equal(t, w1.ID, res.Claims[0].ItemID)
	require.True(t, res.Claims[0].OK())
	require.NotNil(t, res.Claims[0].Claim)

	require.Equal(t, foreign.ID, res.Claims[1].ItemID)
	require.ErrorIs(t, res.Claims[1].Err, ErrItemNotFound)

	require.True(t, c.f.getItem(t, w1.ID).Claimed())
	require.False(t, c.f.getItem(t, foreign.ID).Claimed())
	require.Equal(t, w1.ID, *res.Guest.WishlistItemID)
}

func TestRespondFirstSuccessBecomesPointer(t *testing.T) {
	c := newRSVPCase(t)
	w1 := c.f.item(t, c.event.ID, "Kettle")
	w2 := c.f.item(t, c.event.ID, "Lamp")

	res := c.respond(t, "yes", ptr("gift"), "missing", w2.ID, w1.ID)
	require.True(t, res.Partial())
	require.Equal(t, w2.ID, *res.Guest.WishlistItemID)
	require.True(t, c.f.getItem(t, w1.ID).Claimed())
	require.True(t, c.f.getItem(t, w2.ID).Claimed())
}

func TestRespondAllClaimsFailClearsPointer(t *testing.T) {
	c := newRSVPCase(t)
	w1 := c.f.item(t, c.event.ID, "Kettle")
	c.respond(t, "yes", ptr("gift"), w1.ID)

	res := c.respond(t, "yes", ptr("gift"), "missing")
	require.False(t, res.Partial())
	require.Len(t, res.Claims, 1)
	require.False(t, res.Claims[0].OK())
	require.Nil(t, res.Guest.WishlistItemID)
	require.False(t, c.f.getItem(t, w1.ID).Claimed())
}

func TestRespondGiftToBYOGReleases(t *testing.T) {
	c := newRSVPCase(t)
	w1 := c.f.item(t, c.event.ID, "Kettle")

	c.respond(t, "yes", ptr("gift"), w1.ID)
	require.True(t, c.f.getItem(t, w1.ID).Claimed())

	res := c.respond(t, "yes", ptr("byog"))
	require.Equal(t, domain.GiftBYOG, *res.Guest.GiftOption)
	require.Nil(t, res.Guest.WishlistItemID)

	item := c.f.getItem(t, w1.ID)
	require.False(t, item.Claimed())
	require.NotNil(t, item.ReleasedAt)
}

func TestRespondSwitchingItemsReleasesPrevious(t *testing.T) {
	c := newRSVPCase(t)
	w1 := c.f.item(t, c.event.ID, "Kettle")
	w2 := c.f.item(t, c.event.ID, "Lamp")

	c.respond(t, "yes", ptr("gift"), w1.ID)
	res := c.respond(t, "yes", ptr("gift"), w2.ID)

	require.Equal(t, w2.ID, *res.Guest.WishlistItemID)
	require.False(t, c.f.getItem(t, w1.ID).Claimed())
	require.True(t, c.f.getItem(t, w2.ID).Claimed())
}

func TestRespondKeepingSameItemKeepsClaim(t *testing.T) {
	c := newRSVPCase(t)
	w1 := c.f.item(t, c.event.ID, "Kettle")
	w2 := c.f.item(t, c.event.ID, "Lamp")

	c.respond(t, "yes", ptr("gift"), w1.ID)
	res := c.respond(t, "yes", ptr("gift"), w2.ID, w1.ID)

	require.Equal(t, w2.ID, *res.Guest.WishlistItemID)
	require.True(t, c.f.getItem(t, w1.ID).Claimed())
	require.True(t, c.f.getItem(t, w2.ID).Claimed())
}

func TestRespondOmittedGiftLeavesClaim(t *testing.T) {
	c := newRSVPCase(t)
	w1 := c.f.item(t, c.event.ID, "Kettle")
	c.respond(t, "yes", ptr("gift"), w1.ID)

	res := c.respond(t, "no", nil)
	require.Equal(t, domain.RSVPNo, res.Guest.RSVPStatus)
	require.Equal(t, domain.InviteStatusJoined, res.Guest.InviteStatus)
	require.Equal(t, domain.GiftWishlist, *res.Guest.GiftOption)
	require.Equal(t, w1.ID, *res.Guest.WishlistItemID)
	require.True(t, c.f.getItem(t, w1.ID).Claimed())
}

func TestRespondStampsRespondedAtEveryCall(t *testing.T) {
	c := newRSVPCase(t)

	first := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	c.f.rsvp.Now = func() time.Time { return first }
	res := c.respond(t, "no", nil)
	require.WithinDuration(t, first, *res.Guest.RespondedAt, time.Second)

	second := first.Add(2 * time.Hour)
	c.f.rsvp.Now = func() time.Time { return second }
	res = c.respond(t, "no", nil)
	require.WithinDuration(t, second, *res.Guest.RespondedAt, time.Second)
	require.Equal(t, domain.InviteStatusInvited, res.Guest.InviteStatus)
}

func TestRespondValidation(t *testing.T) {
	c := newRSVPCase(t)

	tests := []struct {
		name string
		req  RespondRequest
		err  error
	}{
		{"bad rsvp", RespondRequest{RSVPStatus: "perhaps"}, ErrInvalidRSVPStatus},
		{"pending is not an answer", RespondRequest{RSVPStatus: "pending"}, ErrInvalidRSVPStatus},
		{"bad gift", RespondRequest{RSVPStatus: "yes", GiftOption: ptr("cash")}, ErrInvalidGiftOption},
		{"gift needs items", RespondRequest{RSVPStatus: "yes", GiftOption: ptr("gift")}, ErrGiftItemRequired},
		{"blank items", RespondRequest{RSVPStatus: "yes", GiftOption: ptr("gift"), WishlistItemIDs: []string{" "}}, ErrGiftItemRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.EventID = c.event.ID
			tt.req.UserID = c.guest.ID
			tt.req.PhoneNumber = c.guest.PhoneNumber
			_, err := c.f.rsvp.Respond(c.f.ctx, tt.req)
			require.ErrorIs(t, err, tt.err)
		})
	}

	g := c.f.guest(t, c.event.ID, c.guest.PhoneNumber)
	require.Equal(t, domain.RSVPPending, g.RSVPStatus)
	require.Nil(t, g.RespondedAt)
}

func TestRespondUnknownGuest(t *testing.T) {
	c := newRSVPCase(t)

	_, err := c.f.rsvp.Respond(c.f.ctx, RespondRequest{
		EventID: c.event.ID, UserID: c.guest.ID, PhoneNumber: "0000", RSVPStatus: "yes",
	})
	require.ErrorIs(t, err, ErrGuestNotFound)

	_, err = c.f.roster.Reconcile(c.f.ctx, c.event.ID, []GuestInput{})
	require.NoError(t, err)

	w1 := c.f.item(t, c.event.ID, "Kettle")
	_, err = c.f.rsvp.Respond(c.f.ctx, RespondRequest{
		EventID: c.event.ID, UserID: c.guest.ID, PhoneNumber: c.guest.PhoneNumber,
		RSVPStatus: "yes", GiftOption: ptr("gift"), WishlistItemIDs: []string{w1.ID},
	})
	require.ErrorIs(t, err, ErrGuestNotFound)
	require.False(t, c.f.getItem(t, w1.ID).Claimed(), "no claim before the guest is found")

	removed := c.f.guest(t, c.event.ID, c.guest.PhoneNumber)
	require.True(t, removed.Removed(), "a yes must not rejoin a removed guest")
	require.Nil(t, removed.RespondedAt)

	_, err = c.f.rsvp.Status(c.f.ctx, c.event.ID, c.guest.ID, c.guest.PhoneNumber)
	require.ErrorIs(t, err, ErrGuestNotFound)
}

func TestRespondEnqueuesHostNotification(t *testing.T) {
	c := newRSVPCase(t)
	before := len(c.f.pending(t))

	c.respond(t, "yes", nil)

	pending := c.f.pending(t)
	require.Len(t, pending, before+1)
	last := pending[len(pending)-1]
	require.Equal(t, domain.NotificationRSVP, last.Kind)
	require.Equal(t, c.host.PhoneNumber, last.Recipient)
	require.Equal(t, "Gita", last.Payload["guest"])
	require.Equal(t, "yes", last.Payload["rsvp"])
}

func TestStatus(t *testing.T) {
	c := newRSVPCase(t)
	w1 := c.f.item(t, c.event.ID, "Kettle")
	w2 := c.f.item(t, c.event.ID, "Lamp")

	view, err := c.f.rsvp.Status(c.f.ctx, c.event.ID, c.guest.ID, c.guest.PhoneNumber)
	require.NoError(t, err)
	require.Equal(t, domain.RSVPPending, view.RSVPStatus)
	require.Empty(t, view.GiftClaims)

	c.f.wishlist.Now = func() time.Time { return time.Now().Add(-time.Minute) }
	c.respond(t, "yes", ptr("gift"), w1.ID)
	c.f.wishlist.Now = nil
	c.respond(t, "yes", ptr("gift"), w1.ID, w2.ID)

	view, err = c.f.rsvp.Status(c.f.ctx, c.event.ID, c.guest.ID, c.guest.PhoneNumber)
	require.NoError(t, err)
	require.Equal(t, domain.RSVPYes, view.RSVPStatus)
	require.Equal(t, domain.InviteStatusJoined, view.InviteStatus)
	require.Equal(t, w1.ID, *view.WishlistItemID)
	require.Len(t, view.GiftClaims, 2)
	require.Equal(t, w2.ID, view.GiftClaims[0].ID)

	_, err = c.f.rsvp.Status(c.f.ctx, c.event.ID, c.guest.ID, "0000")
	require.ErrorIs(t, err, ErrGuestNotFound)
}
