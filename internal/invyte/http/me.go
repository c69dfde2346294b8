package http

import (
	"net/http"

	"github.com/aussiebroadwan/invyte/internal/invyte/service"
	"github.com/aussiebroadwan/invyte/pkg/httpx"
	"github.com/aussiebroadwan/invyte/pkg/invytesdk"
)

type MeHandler struct {
	UserService *service.UserService
}

// HandleGet returns the caller's account.
//
//	@Summary		Get current user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	invytesdk.User
//	@Failure		401	{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404	{object}	invytesdk.ErrorResponse	"User not found"
//	@Router			/v1/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	u, err := h.UserService.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleUpdate sets the caller's display name. Invitations they send after
// this carry the new name.
//
//	@Summary		Update current user
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		invytesdk.UpdateMeRequest	true	"New name"
//	@Success		200		{object}	invytesdk.User
//	@Failure		400		{object}	invytesdk.ErrorResponse	"Invalid name"
//	@Failure		401		{object}	invytesdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		404		{object}	invytesdk.ErrorResponse	"User not found"
//	@Router			/v1/me [patch].
func (h *MeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := caller(w, r)
	if !ok {
		return
	}

	var req invytesdk.UpdateMeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.UserService.UpdateName(r.Context(), userID, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}
