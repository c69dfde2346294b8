package invytesdk

import (
	"context"
	"net/http"
	"net/url"
)

func eventPath(eventID string, rest string) string {
	return "/v1/events/" + url.PathEscape(eventID) + rest
}

// CreateEvent creates a live event hosted by the caller.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	var ev Event
	if err := c.do(ctx, http.MethodPost, "/v1/events", req, &ev, http.StatusCreated); err != nil {
		return nil, err
	}
	return &ev, nil
}

// ListEvents returns the events the caller hosts and is invited to.
func (c *Client) ListEvents(ctx context.Context) (*ListEventsResponse, error) {
	var out ListEventsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/events", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEvent returns one event.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	var ev Event
	if err := c.do(ctx, http.MethodGet, eventPath(eventID, ""), nil, &ev, http.StatusOK); err != nil {
		return nil, err
	}
	return &ev, nil
}

// ResolveInvite fetches the event behind an invite link token.
func (c *Client) ResolveInvite(ctx context.Context, token string) (*Event, error) {
	var ev Event
	if err := c.do(ctx, http.MethodGet, "/v1/invites/"+url.PathEscape(token), nil, &ev, http.StatusOK); err != nil {
		return nil, err
	}
	return &ev, nil
}

// UpdateEvent patches an event hosted by the caller.
func (c *Client) UpdateEvent(ctx context.Context, eventID string, req UpdateEventRequest) (*Event, error) {
	var ev Event
	if err := c.do(ctx, http.MethodPatch, eventPath(eventID, ""), req, &ev, http.StatusOK); err != nil {
		return nil, err
	}
	return &ev, nil
}

// ReplaceGuests reconciles the event roster against guests.
func (c *Client) ReplaceGuests(ctx context.Context, eventID string, guests []GuestInput) ([]Guest, error) {
	if guests == nil {
		guests = []GuestInput{}
	}
	var out GuestsResponse
	err := c.do(ctx, http.MethodPut, eventPath(eventID, "/guests"),
		ReplaceGuestsRequest{Guestlist: guests}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return out.Guestlist, nil
}

// ReplaceWishlist replaces the event wishlist.
func (c *Client) ReplaceWishlist(ctx context.Context, eventID string, items []ItemInput) ([]WishlistItem, error) {
	if items == nil {
		items = []ItemInput{}
	}
	var out WishlistResponse
	err := c.do(ctx, http.MethodPut, eventPath(eventID, "/wishlist"),
		ReplaceWishlistRequest{WishlistItems: items}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// ShareWishlist copies personal items onto the event wishlist.
func (c *Client) ShareWishlist(ctx context.Context, eventID string, itemIDs []string) ([]WishlistItem, error) {
	var out WishlistResponse
	err := c.do(ctx, http.MethodPost, eventPath(eventID, "/wishlist/share"),
		ShareWishlistRequest{WishlistItemIDs: itemIDs}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Respond answers an invitation.
func (c *Client) Respond(ctx context.Context, eventID string, req RespondRequest) (*RespondResponse, error) {
	var out RespondResponse
	if err := c.do(ctx, http.MethodPost, eventPath(eventID, "/respond"), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRSVP returns the caller's current answer in the event.
func (c *Client) GetRSVP(ctx context.Context, eventID string) (*RSVPStatusResponse, error) {
	var out RSVPStatusResponse
	if err := c.do(ctx, http.MethodGet, eventPath(eventID, "/rsvp"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
