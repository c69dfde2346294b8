package invytesdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListWishlist returns the caller's personal wishlist.
func (c *Client) ListWishlist(ctx context.Context) ([]PersonalWishlistItem, error) {
	var out PersonalWishlistResponse
	if err := c.do(ctx, http.MethodGet, "/v1/wishlist", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// AddWishlistItems adds items to the caller's personal wishlist.
func (c *Client) AddWishlistItems(ctx context.Context, items []ItemInput) ([]WishlistItem, error) {
	var out WishlistResponse
	if err := c.do(ctx, http.MethodPost, "/v1/wishlist", AddWishlistRequest{Items: items}, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// UpdateWishlistItem edits a personal item.
func (c *Client) UpdateWishlistItem(ctx context.Context, itemID string, req UpdateWishlistItemRequest) (*WishlistItem, error) {
	var item WishlistItem
	if err := c.do(ctx, http.MethodPatch, "/v1/wishlist/"+url.PathEscape(itemID), req, &item, http.StatusOK); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteWishlistItem deletes a personal item.
func (c *Client) DeleteWishlistItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/wishlist/"+url.PathEscape(itemID), nil, nil, http.StatusNoContent)
}
