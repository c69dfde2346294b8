//go:build e2e

package invyte_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/invyte/pkg/invytesdk"
	"github.com/stretchr/testify/require"
)

// TestInvitationFlow walks an event from creation through an RSVP with a
// gift claim, a competing claim and a guest removal.
func TestInvitationFlow(t *testing.T) {
	svc, cleanup := setupInvyteContainer(t)
	defer cleanup()
	ctx := t.Context()

	host := svc.client(t, hostPhone, "Priya")
	guest := svc.client(t, guestPhone, "")
	other := svc.client(t, otherPhone, "")

	ev, err := host.CreateEvent(ctx, invytesdk.CreateEventRequest{
		Title: "Housewarming",
		Guestlist: []invytesdk.GuestInput{
			{Name: "Asha", PhoneNumber: guestPhone},
			{Name: "Ravi", PhoneNumber: otherPhone},
		},
		WishlistItems: []invytesdk.ItemInput{{Name: "Kettle"}, {Name: "Plant"}},
	})
	require.NoError(t, err)
	require.Len(t, ev.Guestlist, 2)
	require.NotNil(t, ev.HostName)
	require.Equal(t, "Priya", *ev.HostName)

	kettle := ev.Wishlist[0].ID

	resp, err := guest.Respond(ctx, ev.ID, invytesdk.RespondRequest{
		RSVPStatus:      "yes",
		GiftOption:      ptr("gift"),
		WishlistItemIDs: invytesdk.ItemIDs{kettle},
	})
	require.NoError(t, err)
	require.False(t, resp.Partial)
	require.Len(t, resp.Claims, 1)
	require.True(t, resp.Claims[0].Claimed)
	require.Equal(t, "joined", resp.Guest.InviteStatus)

	// A second claimant takes the item over.
	resp, err = other.Respond(ctx, ev.ID, invytesdk.RespondRequest{
		RSVPStatus:      "maybe",
		GiftOption:      ptr("gift"),
		WishlistItemIDs: invytesdk.ItemIDs{kettle},
	})
	require.NoError(t, err)
	require.True(t, resp.Claims[0].Claimed)
	require.Equal(t, "invited", resp.Guest.InviteStatus)

	got, err := host.GetEvent(ctx, ev.ID)
	require.NoError(t, err)
	var claimedBy string
	for _, it := range got.Wishlist {
		if it.ID == kettle {
			require.True(t, it.IsClaimed)
			require.NotNil(t, it.ClaimedBy)
			claimedBy = *it.ClaimedBy
		}
	}
	require.NotEmpty(t, claimedBy)

	// Dropping Ravi soft-removes him; he can no longer see or answer.
	guests, err := host.ReplaceGuests(ctx, ev.ID, []invytesdk.GuestInput{{Name: "Asha", PhoneNumber: guestPhone}})
	require.NoError(t, err)
	require.Len(t, guests, 2)
	for _, g := range guests {
		if g.PhoneNumber == otherPhone {
			require.Equal(t, "removed", g.InviteStatus)
		}
	}

	_, err = other.GetRSVP(ctx, ev.ID)
	requireAPIError(t, err, http.StatusNotFound, invytesdk.ErrorCodeNotFound)

	list, err := other.ListEvents(ctx)
	require.NoError(t, err)
	require.Empty(t, list.Invited)

	status, err := guest.GetRSVP(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, "yes", status.RSVPStatus)
}

func TestPersonalWishlistShare(t *testing.T) {
	svc, cleanup := setupInvyteContainer(t)
	defer cleanup()
	ctx := t.Context()

	host := svc.client(t, hostPhone, "")

	added, err := host.AddWishlistItems(ctx, []invytesdk.ItemInput{{Name: "Camera"}, {Name: "Tripod"}})
	require.NoError(t, err)
	require.Len(t, added, 2)

	ev, err := host.CreateEvent(ctx, invytesdk.CreateEventRequest{Title: "Birthday"})
	require.NoError(t, err)

	shared, err := host.ShareWishlist(ctx, ev.ID, []string{added[0].ID, added[1].ID})
	require.NoError(t, err)
	require.Len(t, shared, 2)

	got, err := host.GetEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, got.Wishlist, 2)

	// Sharing again reuses the event copies.
	shared, err = host.ShareWishlist(ctx, ev.ID, []string{added[0].ID})
	require.NoError(t, err)
	require.Len(t, shared, 1)

	got, err = host.GetEvent(ctx, ev.ID)
	require.NoError(t, err)
	require.Len(t, got.Wishlist, 2)
}
