package http

import (
	"net/http"

	"github.com/aussiebroadwan/invyte/internal/invyte/service"
	"github.com/aussiebroadwan/invyte/pkg/httpx"
	"github.com/aussiebroadwan/invyte/pkg/invytesdk"
)

type RSVPHandler struct {
	RSVPService *service.RSVPService
}

// HandleRespond records the caller's answer to an invitation.
//
//	@Summary		Respond to an invitation
//	@Description	Records rsvp_status and, when gift_option is given, applies the gift choice.
//	@Description	Choosing "gift" claims each wishlist_item_ids entry in order; claims are reported per item and a failed claim does not undo earlier ones.
//	@Description	Any other gift option releases the caller's held claim. Omitting gift_option leaves gift state untouched.
//	@Tags			RSVP
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Event ID"
//	@Param			request	body		invytesdk.RespondRequest	true	"Answer"
//	@Success		200		{object}	invytesdk.RespondResponse
//	@Failure		400		{object}	invytesdk.ErrorResponse	"Invalid rsvp status or gift option"
//	@Failure		401		{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404		{object}	invytesdk.ErrorResponse	"Event or guest not found"
//	@Failure		429		{object}	invytesdk.ErrorResponse	"Rate limit exceeded"
//	@Failure		500		{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/events/{id}/respond [post].
func (h *RSVPHandler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	userID, phone, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req invytesdk.RespondRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.RSVPService.Respond(r.Context(), service.RespondRequest{
		EventID:         id,
		UserID:          userID,
		PhoneNumber:     phone,
		RSVPStatus:      req.RSVPStatus,
		GiftOption:      req.GiftOption,
		WishlistItemIDs: req.WishlistItemIDs,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, invytesdk.RespondResponse{
		Guest:   toGuest(res.Guest),
		Claims:  toClaimResults(res.Claims),
		Partial: res.Partial(),
	})
}

// HandleStatus returns the caller's current answer.
//
//	@Summary		Get RSVP status
//	@Description	Returns the caller's rsvp status, gift choice and, while the choice is "gift", their active claims in the event.
//	@Tags			RSVP
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Event ID"
//	@Success		200	{object}	invytesdk.RSVPStatusResponse
//	@Failure		401	{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	invytesdk.ErrorResponse	"Event or guest not found"
//	@Failure		500	{object}	invytesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/events/{id}/rsvp [get].
func (h *RSVPHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	userID, phone, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.RSVPService.Status(r.Context(), id, userID, phone)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := invytesdk.RSVPStatusResponse{
		RSVPStatus:   string(view.RSVPStatus),
		InviteStatus: string(view.InviteStatus),
		WishlistID:   view.WishlistItemID,
		RespondedAt:  view.RespondedAt,
		GiftClaims:   toItems(view.GiftClaims),
	}
	if view.GiftOption != nil {
		opt := string(*view.GiftOption)
		resp.GiftOption = &opt
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
