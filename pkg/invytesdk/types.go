package invytesdk

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Common
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a stable machine-readable code (e.g., "invalid_request", "not_found")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of the service's dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Users
// ============================================================================

// User is an account identified by its phone number.
type User struct {
	ID          string    `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Name        *string   `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateMeRequest sets the caller's display name.
type UpdateMeRequest struct {
	Name string `json:"name"`
}

// ============================================================================
// Events
// ============================================================================

// GuestInput is one entry of a submitted guest list.
type GuestInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// ItemInput is a submitted wishlist item.
type ItemInput struct {
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Guest is a roster entry of an event.
type Guest struct {
	ID           string     `json:"id"`
	PhoneNumber  string     `json:"phone_number"`
	Name         string     `json:"name"`
	InviteStatus string     `json:"invite_status"`
	RSVPStatus   string     `json:"rsvp_status"`
	GiftOption   *string    `json:"gift_option"`
	WishlistID   *string    `json:"wishlist_id"`
	InvitedAt    time.Time  `json:"invited_at"`
	RespondedAt  *time.Time `json:"responded_at"`
}

// WishlistItem is a gift idea, either attached to an event or personal.
type WishlistItem struct {
	ID          string     `json:"id"`
	EventID     *string    `json:"event_id"`
	Name        string     `json:"name"`
	URL         string     `json:"url"`
	ImageURL    string     `json:"image_url"`
	IsClaimed   bool       `json:"is_claimed"`
	ClaimedBy   *string    `json:"claimed_by"`
	ClaimStatus *string    `json:"claim_status"`
	ClaimedAt   *time.Time `json:"claimed_at"`
	ReleasedAt  *time.Time `json:"released_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Event is the full view of an event: details, roster and wishlist.
type Event struct {
	ID          string         `json:"id"`
	HostID      string         `json:"host_id"`
	HostName    *string        `json:"host_name"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Venue       string         `json:"venue"`
	Theme       string         `json:"theme"`
	EventDate   *time.Time     `json:"event_date"`
	Status      string         `json:"status"`
	InviteLink  string         `json:"invite_link"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Guestlist   []Guest        `json:"guestlist"`
	Wishlist    []WishlistItem `json:"wishlist"`
}

// ListEventsResponse splits the caller's events by role.
type ListEventsResponse struct {
	Hosting []Event `json:"hosting"`
	Invited []Event `json:"invited"`
}

// CreateEventRequest creates a live event.
type CreateEventRequest struct {
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	Venue         string       `json:"venue,omitempty"`
	Theme         string       `json:"theme,omitempty"`
	EventDate     *time.Time   `json:"event_date,omitempty"`
	Guestlist     []GuestInput `json:"guestlist,omitempty"`
	WishlistItems []ItemInput  `json:"wishlist_items,omitempty"`
}

// UpdateEventRequest patches an event. Omitted fields are left alone. An
// explicit empty guestlist removes every guest; an explicit empty
// wishlist_items clears the event wishlist.
type UpdateEventRequest struct {
	Title         *string      `json:"title,omitempty"`
	Description   *string      `json:"description,omitempty"`
	Venue         *string      `json:"venue,omitempty"`
	Theme         *string      `json:"theme,omitempty"`
	EventDate     *time.Time   `json:"event_date,omitempty"`
	Status        *string      `json:"status,omitempty"`
	Guestlist     []GuestInput `json:"guestlist"`
	WishlistItems []ItemInput  `json:"wishlist_items"`
}

// ReplaceGuestsRequest is the body of PUT /v1/events/{id}/guests.
type ReplaceGuestsRequest struct {
	Guestlist []GuestInput `json:"guestlist"`
}

// GuestsResponse lists an event roster, removed guests included.
type GuestsResponse struct {
	Guestlist []Guest `json:"guestlist"`
}

// ReplaceWishlistRequest is the body of PUT /v1/events/{id}/wishlist.
type ReplaceWishlistRequest struct {
	WishlistItems []ItemInput `json:"wishlist_items"`
}

// ShareWishlistRequest copies personal items onto an event.
type ShareWishlistRequest struct {
	WishlistItemIDs []string `json:"wishlist_item_ids"`
}

// WishlistResponse lists wishlist items.
type WishlistResponse struct {
	Items []WishlistItem `json:"items"`
}

// ============================================================================
// RSVP
// ============================================================================

// ItemIDs accepts either a single id or a list of ids.
type ItemIDs []string

func (ids *ItemIDs) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one == "" {
			*ids = nil
		} else {
			*ids = ItemIDs{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*ids = many
	return nil
}

// RespondRequest is a guest's answer. Omitting gift_option leaves the gift
// choice and any held claim untouched.
type RespondRequest struct {
	RSVPStatus      string  `json:"rsvp_status"`
	GiftOption      *string `json:"gift_option,omitempty"`
	WishlistItemIDs ItemIDs `json:"wishlist_item_ids,omitempty"`
}

// ClaimResult is the outcome of one requested claim.
type ClaimResult struct {
	WishlistItemID string     `json:"wishlist_item_id"`
	Claimed        bool       `json:"claimed"`
	ClaimStatus    string     `json:"claim_status,omitempty"`
	ClaimedAt      *time.Time `json:"claimed_at,omitempty"`
	Error          string     `json:"error,omitempty"`
}

// RespondResponse carries the updated guest and per-item claim results in
// request order. Partial is set when some claims failed and others did not.
type RespondResponse struct {
	Guest   Guest         `json:"guest"`
	Claims  []ClaimResult `json:"claims"`
	Partial bool          `json:"partial"`
}

// RSVPStatusResponse is the caller's current answer in an event.
type RSVPStatusResponse struct {
	RSVPStatus   string         `json:"rsvp_status"`
	InviteStatus string         `json:"invite_status"`
	GiftOption   *string        `json:"gift_option"`
	WishlistID   *string        `json:"wishlist_id"`
	RespondedAt  *time.Time     `json:"responded_at"`
	GiftClaims   []WishlistItem `json:"gift_claims"`
}

// ============================================================================
// Personal wishlist
// ============================================================================

// PersonalWishlistItem is a personal item with the claims on its shared copies.
type PersonalWishlistItem struct {
	WishlistItem
	ClaimedCount    int      `json:"claimed_count"`
	ClaimedInEvents []string `json:"claimed_in_events"`
}

// PersonalWishlistResponse lists the caller's personal wishlist, unclaimed first.
type PersonalWishlistResponse struct {
	Items []PersonalWishlistItem `json:"items"`
}

// AddWishlistRequest adds items to the caller's personal wishlist.
type AddWishlistRequest struct {
	Items []ItemInput `json:"items"`
}

// UpdateWishlistItemRequest edits a personal item.
type UpdateWishlistItemRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
}
