package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctx      context.Context
	db       *sqlite.Store
	outbox   *Outbox
	users    *UserService
	wishlist *WishlistService
	roster   *RosterService
	rsvp     *RSVPService
	events   *EventService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "invyte.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.ApplyMigrations())

	outbox := &Outbox{Store: db, InviteBaseURL: "https://invyte.test/i/"}
	wishlist := &WishlistService{Store: db}
	roster := &RosterService{Store: db, Outbox: outbox}

	return &fixture{
		ctx:      context.Background(),
		db:       db,
		outbox:   outbox,
		users:    &UserService{Store: db},
		wishlist: wishlist,
		roster:   roster,
		rsvp:     &RSVPService{Store: db, Wishlist: wishlist, Outbox: outbox},
		events:   &EventService{Store: db, Roster: roster, Wishlist: wishlist},
	}
}

func (f *fixture) user(t *testing.T, phone string) domain.User {
	t.Helper()
	u, err := f.users.FindOrCreateByPhone(f.ctx, phone)
	require.NoError(t, err)
	return u
}

func (f *fixture) event(t *testing.T, host domain.User, guests ...GuestInput) domain.Event {
	t.Helper()
	view, err := f.events.Create(f.ctx, host.ID, EventInput{Title: "Birthday", Guests: guests})
	require.NoError(t, err)
	return view.Event
}

func (f *fixture) item(t *testing.T, eventID, name string) domain.WishlistItem {
	t.Helper()
	items, err := f.wishlist.AddToEvent(f.ctx, eventID, []ItemInput{{Name: name}})
	require.NoError(t, err)
	require.Len(t, items, 1)
	return items[0]
}

func (f *fixture) guest(t *testing.T, eventID, phone string) domain.Guest {
	t.Helper()
	g, err := f.db.Guests().GetGuestByPhone(f.ctx, eventID, phone)
	require.NoError(t, err)
	return g
}

func (f *fixture) getItem(t *testing.T, id string) domain.WishlistItem {
	t.Helper()
	item, err := f.db.Wishlist().GetItemByID(f.ctx, id)
	require.NoError(t, err)
	return item
}

func (f *fixture) pending(t *testing.T) []domain.Notification {
	t.Helper()
	n, err := f.db.Notifications().ListPendingNotifications(f.ctx, 100)
	require.NoError(t, err)
	return n
}

func ptr[T any](v T) *T { return &v }

func byPhone(roster []domain.Guest) map[string]domain.Guest {
	out := make(map[string]domain.Guest, len(roster))
	for _, g := range roster {
		out[g.PhoneNumber] = g
	}
	return out
}
