package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/store"
	"github.com/aussiebroadwan/invyte/internal/invyte/store/drivers/sqlite"
	"github.com/aussiebroadwan/invyte/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	db, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "invyte.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.ApplyMigrations())
	return db
}

func seedUser(t *testing.T, db store.Store, phone string) domain.User {
	t.Helper()
	u := domain.User{ID: idx.New().String(), PhoneNumber: phone}
	require.NoError(t, db.Users().CreateUser(context.Background(), u))
	return u
}

func seedEvent(t *testing.T, db store.Store, hostID string) domain.Event {
	t.Helper()
	e := domain.Event{
		ID:         idx.New().String(),
		HostID:     hostID,
		Title:      "Birthday",
		Status:     domain.EventStatusLive,
		InviteLink: idx.NewToken(),
	}
	require.NoError(t, db.Events().CreateEvent(context.Background(), e))
	return e
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := newTestStore(t)
	require.NoError(t, db.ApplyMigrations())

	version, dirty, err := db.MigrationVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), version)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	db := newTestStore(t)

	u := seedUser(t, db, "9990001111")

	got, err := db.Users().GetUserByPhone(ctx, "9990001111")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Nil(t, got.Name)

	err = db.Users().CreateUser(ctx, domain.User{ID: idx.New().String(), PhoneNumber: "9990001111"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	require.NoError(t, db.Users().UpdateUserName(ctx, u.ID, "Asha"))
	got, err = db.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Name)
	require.Equal(t, "Asha", *got.Name)

	_, err = db.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestGuests(t *testing.T) {
	ctx := context.Background()
	db := newTestStore(t)

	host := seedUser(t, db, "1110000000")
	event := seedEvent(t, db, host.ID)

	g1 := domain.Guest{
		ID: idx.New().String(), EventID: event.ID, PhoneNumber: "222", Name: "Ben",
		InviteStatus: domain.InviteStatusInvited, RSVPStatus: domain.RSVPPending,
	}
	g2 := domain.Guest{
		ID: idx.New().String(), EventID: event.ID, PhoneNumber: "333", Name: "Cy",
		InviteStatus: domain.InviteStatusInvited, RSVPStatus: domain.RSVPPending,
	}
	require.NoError(t, db.Guests().CreateGuest(ctx, g1))
	require.NoError(t, db.Guests().CreateGuest(ctx, g2))

	dup := g1
	dup.ID = idx.New().String()
	require.ErrorIs(t, db.Guests().CreateGuest(ctx, dup), store.ErrAlreadyExists)

	roster, err := db.Guests().ListGuestsByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	require.Equal(t, g1.ID, roster[0].ID)
	require.Equal(t, g2.ID, roster[1].ID)

	require.NoError(t, db.Guests().SetGuestInviteStatus(ctx, g1.ID, domain.InviteStatusRemoved, time.Now()))

	events, err := db.Events().ListEventsByGuestPhone(ctx, "222")
	require.NoError(t, err)
	require.Empty(t, events)

	events, err = db.Events().ListEventsByGuestPhone(ctx, "333")
	require.NoError(t, err)
	require.Len(t, events, 1)

	reinvitedAt := time.Now().Add(time.Hour).UTC()
	require.NoError(t, db.Guests().SetGuestInviteStatus(ctx, g1.ID, domain.InviteStatusInvited, reinvitedAt))

	got, err := db.Guests().GetGuestByPhone(ctx, event.ID, "222")
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusInvited, got.InviteStatus)
	require.WithinDuration(t, reinvitedAt, got.InvitedAt, time.Second)

	gift := domain.GiftCard
	now := time.Now().UTC()
	got.RSVPStatus = domain.RSVPYes
	got.InviteStatus = domain.InviteStatusJoined
	got.GiftOption = &gift
	got.RespondedAt = &now
	require.NoError(t, db.Guests().UpdateGuestResponse(ctx, got))

	got, err = db.Guests().GetGuestByPhone(ctx, event.ID, "222")
	require.NoError(t, err)
	require.Equal(t, domain.RSVPYes, got.RSVPStatus)
	require.Equal(t, domain.InviteStatusJoined, got.InviteStatus)
	require.NotNil(t, got.GiftOption)
	require.Equal(t, domain.GiftCard, *got.GiftOption)
	require.NotNil(t, got.RespondedAt)
	require.Nil(t, got.WishlistItemID)
}

func TestWishlistClaimRelease(t *testing.T) {
	ctx := context.Background()
	db := newTestStore(t)

	host := seedUser(t, db, "1110000000")
	guest := seedUser(t, db, "2220000000")
	event := seedEvent(t, db, host.ID)

	item := domain.WishlistItem{ID: idx.New().String(), HostID: host.ID, EventID: &event.ID, Name: "Kettle"}
	require.NoError(t, db.Wishlist().CreateItem(ctx, item))

	require.NoError(t, db.Wishlist().ClaimItem(ctx, item.ID, guest.ID, time.Now()))
	got, err := db.Wishlist().GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	require.True(t, got.Claimed())
	require.Equal(t, guest.ID, *got.ClaimedBy)
	require.Equal(t, domain.ClaimStatusPending, got.ClaimStatus)
	require.NotNil(t, got.ClaimedAt)

	claims, err := db.Wishlist().ListClaimsByUser(ctx, event.ID, guest.ID)
	require.NoError(t, err)
	require.Len(t, claims, 1)

	claimed, err := db.Wishlist().ListClaimedEventItemsByHost(ctx, host.ID)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	require.NoError(t, db.Wishlist().ReleaseItem(ctx, item.ID, time.Now()))
	require.NoError(t, db.Wishlist().ReleaseItem(ctx, item.ID, time.Now()))
	got, err = db.Wishlist().GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	require.False(t, got.Claimed())
	require.Nil(t, got.ClaimedBy)
	require.NotNil(t, got.ReleasedAt)

	require.ErrorIs(t, db.Wishlist().ClaimItem(ctx, "missing", guest.ID, time.Now()), store.ErrNotFound)
}

func TestDeletingItemClearsGuestPointer(t *testing.T) {
	ctx := context.Background()
	db := newTestStore(t)

	host := seedUser(t, db, "1110000000")
	event := seedEvent(t, db, host.ID)

	item := domain.WishlistItem{ID: idx.New().String(), HostID: host.ID, EventID: &event.ID, Name: "Lamp"}
	require.NoError(t, db.Wishlist().CreateItem(ctx, item))

	g := domain.Guest{
		ID: idx.New().String(), EventID: event.ID, PhoneNumber: "222", Name: "Ben",
		InviteStatus: domain.InviteStatusInvited, RSVPStatus: domain.RSVPPending,
	}
	require.NoError(t, db.Guests().CreateGuest(ctx, g))
	g.WishlistItemID = &item.ID
	g.RSVPStatus = domain.RSVPYes
	require.NoError(t, db.Guests().UpdateGuestResponse(ctx, g))

	require.NoError(t, db.Wishlist().DeleteItem(ctx, item.ID))

	got, err := db.Guests().GetGuestByPhone(ctx, event.ID, "222")
	require.NoError(t, err)
	require.Nil(t, got.WishlistItemID)
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	db := newTestStore(t)

	first := domain.Notification{
		ID: idx.New().String(), Kind: domain.NotificationInvite, Recipient: "222",
		Payload: map[string]string{"event": "Birthday"},
	}
	second := domain.Notification{
		ID: idx.New().String(), Kind: domain.NotificationRSVP, Recipient: "111",
		Payload: map[string]string{"rsvp": "yes"},
	}
	require.NoError(t, db.Notifications().CreateNotification(ctx, first))
	require.NoError(t, db.Notifications().CreateNotification(ctx, second))

	pending, err := db.Notifications().ListPendingNotifications(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	require.Equal(t, first.ID, pending[0].ID)
	require.Equal(t, "Birthday", pending[0].Payload["event"])

	sentAt := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Notifications().MarkNotificationSent(ctx, first.ID, sentAt))
	require.NoError(t, db.Notifications().MarkNotificationFailed(ctx, second.ID, "gateway down"))

	pending, err = db.Notifications().ListPendingNotifications(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, pending)

	n, err := db.Notifications().DeleteSentNotificationsBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	db := newTestStore(t)

	err := db.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, domain.User{ID: idx.New().String(), PhoneNumber: "555"}))
		return store.ErrNotFound
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = db.Users().GetUserByPhone(ctx, "555")
	require.ErrorIs(t, err, store.ErrNotFound)
}
