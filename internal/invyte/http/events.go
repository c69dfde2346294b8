package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/invyte/internal/invyte/service"
	"github.com/aussiebroadwan/invyte/pkg/httpx"
	"github.com/aussiebroadwan/invyte/pkg/invytesdk"
)

type EventsHandler struct {
	EventService    *service.EventService
	WishlistService *service.WishlistService
}

// HandleCreate creates an event hosted by the caller.
//
//	@Summary		Create event
//	@Description	Creates a live event with a fresh invite link. Guests are invited and wishlist items attached in one call.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invytesdk.CreateEventRequest	true	"Event details"
//	@Success		201		{object}	invytesdk.Event
//	@Failure		400		{object}	invytesdk.ErrorResponse	"Invalid request"
//	@Failure		401		{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500		{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/events [post].
func (h *EventsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	var req invytesdk.CreateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	view, err := h.EventService.Create(r.Context(), userID, service.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		Theme:       req.Theme,
		EventDate:   req.EventDate,
		Guests:      toGuestInputs(req.Guestlist),
		Wishlist:    toItemInputs(req.WishlistItems),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toEvent(view))
}

// HandleList lists the caller's events.
//
//	@Summary		List events
//	@Description	Returns the events the caller hosts and the events they are invited to, newest first.
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	invytesdk.ListEventsResponse
//	@Failure		401	{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500	{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/events [get].
func (h *EventsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, phone, ok := caller(w, r)
	if !ok {
		return
	}

	hosting, invited, err := h.EventService.ListForUser(r.Context(), userID, phone)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invytesdk.ListEventsResponse{
		Hosting: toEvents(hosting),
		Invited: toEvents(invited),
	})
}

// HandleGet returns one event to its host or one of its guests.
//
//	@Summary		Get event
//	@Description	Returns the event with its roster and wishlist. Visible to the host and to guests still on the roster.
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Event ID"
//	@Success		200	{object}	invytesdk.Event
//	@Failure		401	{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	invytesdk.ErrorResponse	"Event not found"
//	@Failure		500	{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/events/{id} [get].
func (h *EventsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, phone, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.EventService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !canView(view, userID, phone) {
		writeServiceError(w, r, service.ErrEventNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEvent(view))
}

// HandleResolveInvite returns the event behind an invite link.
//
//	@Summary		Resolve invite link
//	@Description	Returns the event an invite token points at. Visible to the host and to guests still on the roster.
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		json
//	@Param			token	path		string	true	"Invite token"
//	@Success		200		{object}	invytesdk.Event
//	@Failure		401		{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404		{object}	invytesdk.ErrorResponse	"Event not found"
//	@Failure		500		{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/invites/{token} [get].
func (h *EventsHandler) HandleResolveInvite(w http.ResponseWriter, r *http.Request) {
	userID, phone, ok := caller(w, r)
	if !ok {
		return
	}

	view, err := h.EventService.GetByInviteLink(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !canView(view, userID, phone) {
		writeServiceError(w, r, service.ErrEventNotFound)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEvent(view))
}

func canView(v service.EventView, userID, phone string) bool {
	if v.Event.HostID == userID {
		return true
	}
	phone = strings.TrimSpace(phone)
	for _, g := range v.Guests {
		if g.PhoneNumber == phone && !g.Removed() {
			return true
		}
	}
	return false
}

// HandleUpdate patches an event.
//
//	@Summary		Update event
//	@Description	Updates event details. A guestlist, when present, is reconciled against the roster; an empty one removes every guest.
//	@Description	wishlist_items, when present, replaces the event wishlist.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Event ID"
//	@Param			request	body		invytesdk.UpdateEventRequest	true	"Fields to change"
//	@Success		200		{object}	invytesdk.Event
//	@Failure		400		{object}	invytesdk.ErrorResponse	"Invalid request"
//	@Failure		401		{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404		{object}	invytesdk.ErrorResponse	"Event not found"
//	@Failure		500		{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/events/{id} [patch].
func (h *EventsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req invytesdk.UpdateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	view, err := h.EventService.Update(r.Context(), id, userID, service.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		Venue:       req.Venue,
		Theme:       req.Theme,
		EventDate:   req.EventDate,
		Status:      req.Status,
		Guests:      toGuestInputs(req.Guestlist),
		Wishlist:    toItemInputs(req.WishlistItems),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toEvent(view))
}

// HandleReplaceGuests reconciles the roster.
//
//	@Summary		Replace guest list
//	@Description	Reconciles the roster against the submitted list. New numbers are invited, missing ones removed, returning ones re-invited.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Event ID"
//	@Param			request	body		invytesdk.ReplaceGuestsRequest	true	"Full guest list"
//	@Success		200		{object}	invytesdk.GuestsResponse
//	@Failure		400		{object}	invytesdk.ErrorResponse	"Invalid guest list"
//	@Failure		401		{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404		{object}	invytesdk.ErrorResponse	"Event not found"
//	@Failure		500		{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/events/{id}/guests [put].
func (h *EventsHandler) HandleReplaceGuests(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req invytesdk.ReplaceGuestsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	guests := toGuestInputs(req.Guestlist)
	if guests == nil {
		guests = []service.GuestInput{}
	}

	view, err := h.EventService.Update(r.Context(), id, userID, service.EventPatch{Guests: guests})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invytesdk.GuestsResponse{Guestlist: toGuests(view.Guests)})
}

// HandleReplaceWishlist replaces the event wishlist.
//
//	@Summary		Replace event wishlist
//	@Description	Keeps items whose name is resubmitted, deletes the rest (releasing their claims) and adds new names.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Event ID"
//	@Param			request	body		invytesdk.ReplaceWishlistRequest	true	"Full wishlist"
//	@Success		200		{object}	invytesdk.WishlistResponse
//	@Failure		400		{object}	invytesdk.ErrorResponse	"Invalid item"
//	@Failure		401		{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404		{object}	invytesdk.ErrorResponse	"Event not found"
//	@Failure		500		{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/events/{id}/wishlist [put].
func (h *EventsHandler) HandleReplaceWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req invytesdk.ReplaceWishlistRequest
	if !decodeBody(w, r, &req) {
		return
	}
	items := toItemInputs(req.WishlistItems)
	if items == nil {
		items = []service.ItemInput{}
	}

	view, err := h.EventService.Update(r.Context(), id, userID, service.EventPatch{Wishlist: items})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invytesdk.WishlistResponse{Items: toItems(view.Wishlist)})
}

// HandleShareWishlist copies personal items onto the event.
//
//	@Summary		Share personal wishlist items
//	@Description	Copies the caller's personal items onto an event they host. A name already on the event returns the existing event item.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Event ID"
//	@Param			request	body		invytesdk.ShareWishlistRequest	true	"Personal item IDs"
//	@Success		201		{object}	invytesdk.WishlistResponse	"Event items, one per shared personal item"
//	@Failure		400		{object}	invytesdk.ErrorResponse		"Invalid request"
//	@Failure		401		{object}	invytesdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		404		{object}	invytesdk.ErrorResponse		"Event or item not found"
//	@Failure		500		{object}	invytesdk.ErrorResponse		"Internal server error"
//	@Router			/v1/events/{id}/wishlist/share [post].
func (h *EventsHandler) HandleShareWishlist(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req invytesdk.ShareWishlistRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.WishlistItemIDs) == 0 {
		invytesdk.NewAPIError(http.StatusBadRequest, invytesdk.ErrorCodeInvalidRequest,
			"wishlist_item_ids is required").WriteError(w)
		return
	}

	items, err := h.WishlistService.ShareToEvent(r.Context(), userID, id, req.WishlistItemIDs)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, invytesdk.WishlistResponse{Items: toItems(items)})
}
