package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose one sub-repository per table. Sub-repos are methods so a Tx-scoped
// store can hand out the same repos bound to the transaction.
type Store interface {
	Users() Users
	Events() Events
	Guests() Guests
	Wishlist() Wishlist
	Notifications() Notifications

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByPhone looks a user up by their external identity.
	GetUserByPhone(ctx context.Context, phone string) (domain.User, error)

	// CreateUser inserts a new user. A duplicate phone number returns
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	UpdateUserName(ctx context.Context, id string, name string) error
}

type Events interface {
	GetEventByID(ctx context.Context, id string) (domain.Event, error)
	GetEventByInviteLink(ctx context.Context, link string) (domain.Event, error)

	CreateEvent(ctx context.Context, e domain.Event) error

	// UpdateEvent replaces the descriptive fields and status of e.ID.
	UpdateEvent(ctx context.Context, e domain.Event) error

	// ListEventsByHost returns the host's events, newest first.
	ListEventsByHost(ctx context.Context, hostID string) ([]domain.Event, error)

	// ListEventsByGuestPhone returns events where phone is on the roster and
	// not removed, newest first.
	ListEventsByGuestPhone(ctx context.Context, phone string) ([]domain.Event, error)
}

type Guests interface {
	// ListGuestsByEvent returns the whole roster, removed guests included, in
	// creation order.
	ListGuestsByEvent(ctx context.Context, eventID string) ([]domain.Guest, error)

	GetGuestByPhone(ctx context.Context, eventID, phone string) (domain.Guest, error)

	// CreateGuest inserts a guest. (event, phone) collisions return
	// ErrAlreadyExists.
	CreateGuest(ctx context.Context, g domain.Guest) error

	UpdateGuestName(ctx context.Context, id, name string) error

	// SetGuestInviteStatus moves a guest between roster states. Moving to
	// invited also stamps invited_at.
	SetGuestInviteStatus(ctx context.Context, id string, status domain.InviteStatus, at time.Time) error

	// UpdateGuestResponse writes rsvp_status, invite_status, gift_option,
	// wishlist_item_id and responded_at from g in one statement.
	UpdateGuestResponse(ctx context.Context, g domain.Guest) error
}

type Wishlist interface {
	GetItemByID(ctx context.Context, id string) (domain.WishlistItem, error)

	// ListItemsByEvent returns event-scoped items in creation order.
	ListItemsByEvent(ctx context.Context, eventID string) ([]domain.WishlistItem, error)

	// ListPersonalItems returns the user's items that have no event,
	// newest first.
	ListPersonalItems(ctx context.Context, userID string) ([]domain.WishlistItem, error)

	// ListClaimedEventItemsByHost returns the host's claimed event-scoped
	// items, most recently claimed first.
	ListClaimedEventItemsByHost(ctx context.Context, hostID string) ([]domain.WishlistItem, error)

	// ListClaimsByUser returns items in the event currently claimed by
	// userID, most recently claimed first.
	ListClaimsByUser(ctx context.Context, eventID, userID string) ([]domain.WishlistItem, error)

	CreateItem(ctx context.Context, item domain.WishlistItem) error
	UpdateItemDetails(ctx context.Context, id, name, url, imageURL string) error
	DeleteItem(ctx context.Context, id string) error

	// ClaimItem overwrites the claimant unconditionally and resets the claim
	// to pending. It does not check for an existing claim.
	ClaimItem(ctx context.Context, id, userID string, at time.Time) error

	// ReleaseItem clears the claimant and stamps released_at.
	ReleaseItem(ctx context.Context, id string, at time.Time) error
}

type Notifications interface {
	CreateNotification(ctx context.Context, n domain.Notification) error

	// ListPendingNotifications returns up to limit pending rows, oldest first.
	ListPendingNotifications(ctx context.Context, limit int) ([]domain.Notification, error)

	MarkNotificationSent(ctx context.Context, id string, at time.Time) error
	MarkNotificationFailed(ctx context.Context, id string, reason string) error

	// DeleteSentNotificationsBefore is housekeeping for delivered rows.
	DeleteSentNotificationsBefore(ctx context.Context, before time.Time) (int64, error)
}
