package domain

import "time"

type ClaimStatus string

const (
	ClaimStatusPending   ClaimStatus = "pending"
	ClaimStatusConfirmed ClaimStatus = "confirmed"
)

// WishlistItem is personal when EventID is nil, otherwise a copy owned by
// the event host. Claim fields only change through claim and release.
type WishlistItem struct {
	ID          string
	HostID      string
	EventID     *string
	Name        string
	URL         string
	ImageURL    string
	IsClaimed   bool
	ClaimedBy   *string
	ClaimStatus ClaimStatus
	ClaimedAt   *time.Time
	ConfirmedAt *time.Time
	ReleasedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Claimed reports whether someone currently holds the item.
func (w WishlistItem) Claimed() bool { return w.IsClaimed && w.ClaimedBy != nil }

func (w WishlistItem) Personal() bool { return w.EventID == nil }

// PersonalWishlistItem annotates a personal item with how often event copies
// of it (matched by name) are currently claimed.
type PersonalWishlistItem struct {
	WishlistItem
	ClaimedCount    int
	ClaimedInEvents []string
}
