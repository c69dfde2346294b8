package http

import (
	"net/http"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/service"
	"github.com/aussiebroadwan/invyte/pkg/httpx"
	"github.com/aussiebroadwan/invyte/pkg/invytesdk"
)

type WishlistHandler struct {
	WishlistService *service.WishlistService
}

// HandleList returns the caller's personal wishlist.
//
//	@Summary		List personal wishlist
//	@Description	Returns the caller's personal items, unclaimed first, each with the events its shared copies are claimed in.
//	@Tags			Wishlist
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	invytesdk.PersonalWishlistResponse
//	@Failure		401	{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/wishlist [get].
func (h *WishlistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	items, err := h.WishlistService.ListPersonal(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]invytesdk.PersonalWishlistItem, 0, len(items))
	for _, it := range items {
		out = append(out, toPersonalItem(it))
	}
	httpx.WriteJSON(w, http.StatusOK, invytesdk.PersonalWishlistResponse{Items: out})
}

func toPersonalItem(it domain.PersonalWishlistItem) invytesdk.PersonalWishlistItem {
	events := it.ClaimedInEvents
	if events == nil {
		events = []string{}
	}
	return invytesdk.PersonalWishlistItem{
		WishlistItem:    toItem(it.WishlistItem),
		ClaimedCount:    it.ClaimedCount,
		ClaimedInEvents: events,
	}
}

// HandleAdd adds items to the caller's personal wishlist.
//
//	@Summary		Add personal wishlist items
//	@Description	Adds items to the caller's personal wishlist. Items without a name are skipped.
//	@Tags			Wishlist
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invytesdk.AddWishlistRequest	true	"Items"
//	@Success		201		{object}	invytesdk.WishlistResponse
//	@Failure		400		{object}	invytesdk.ErrorResponse	"No usable items"
//	@Failure		401		{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500		{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/wishlist [post].
func (h *WishlistHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	var req invytesdk.AddWishlistRequest
	if !decodeBody(w, r, &req) {
		return
	}

	items, err := h.WishlistService.AddPersonal(r.Context(), userID, toItemInputs(req.Items))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, invytesdk.WishlistResponse{Items: toItems(items)})
}

// HandleUpdate edits a personal wishlist item.
//
//	@Summary		Update personal wishlist item
//	@Tags			Wishlist
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Item ID"
//	@Param			request	body		invytesdk.UpdateWishlistItemRequest	true	"Item"
//	@Success		200		{object}	invytesdk.WishlistItem
//	@Failure		400		{object}	invytesdk.ErrorResponse	"Invalid item"
//	@Failure		401		{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404		{object}	invytesdk.ErrorResponse	"Item not found"
//	@Failure		500		{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/wishlist/{id} [patch].
func (h *WishlistHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req invytesdk.UpdateWishlistItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.WishlistService.UpdatePersonal(r.Context(), userID, id, service.ItemInput{
		Name:     req.Name,
		URL:      req.URL,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toItem(item))
}

// HandleDelete deletes a personal wishlist item.
//
//	@Summary		Delete personal wishlist item
//	@Tags			Wishlist
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Item ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	invytesdk.ErrorResponse	"Item not found"
//	@Failure		500	{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/wishlist/{id} [delete].
func (h *WishlistHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.WishlistService.DeletePersonal(r.Context(), userID, id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
