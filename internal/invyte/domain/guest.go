package domain

import (
	"strings"
	"time"
)

// InviteStatus is where a guest sits in the roster lifecycle.
type InviteStatus string

const (
	InviteStatusInvited InviteStatus = "invited"
	InviteStatusJoined  InviteStatus = "joined"
	InviteStatusRemoved InviteStatus = "removed"
)

// RSVPStatus is the guest's attendance answer.
type RSVPStatus string

const (
	RSVPPending RSVPStatus = "pending"
	RSVPYes     RSVPStatus = "yes"
	RSVPNo      RSVPStatus = "no"
	RSVPMaybe   RSVPStatus = "maybe"
)

// ParseRSVPStatus canonicalises a guest answer. Pending is not an answer.
func ParseRSVPStatus(s string) (RSVPStatus, bool) {
	switch RSVPStatus(strings.ToLower(strings.TrimSpace(s))) {
	case RSVPYes:
		return RSVPYes, true
	case RSVPNo:
		return RSVPNo, true
	case RSVPMaybe:
		return RSVPMaybe, true
	}
	return "", false
}

// GiftOption is the guest's stated gifting intention.
type GiftOption string

const (
	GiftBYOG     GiftOption = "BYOG"
	GiftNone     GiftOption = "no gift"
	GiftCard     GiftOption = "gift card"
	GiftWishlist GiftOption = "gift"
)

// ParseGiftOption canonicalises case and surrounding space.
func ParseGiftOption(s string) (GiftOption, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "byog":
		return GiftBYOG, true
	case "no gift":
		return GiftNone, true
	case "gift card":
		return GiftCard, true
	case "gift":
		return GiftWishlist, true
	}
	return "", false
}

// Guest is one invitee of one event, keyed by (EventID, PhoneNumber).
// Guests are never hard-deleted; dropping them from the list sets
// InviteStatus to removed.
type Guest struct {
	ID             string
	EventID        string
	PhoneNumber    string
	Name           string
	InviteStatus   InviteStatus
	RSVPStatus     RSVPStatus
	GiftOption     *GiftOption
	WishlistItemID *string // first item claimed with the current gift choice
	InvitedAt      time.Time
	RespondedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (g Guest) Removed() bool { return g.InviteStatus == InviteStatusRemoved }
