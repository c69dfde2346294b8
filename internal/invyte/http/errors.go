package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/invyte/internal/invyte/service"
	"github.com/aussiebroadwan/invyte/pkg/httpx"
	"github.com/aussiebroadwan/invyte/pkg/idx"
	"github.com/aussiebroadwan/invyte/pkg/invytesdk"
	"github.com/aussiebroadwan/invyte/pkg/slogx"
)

var validationErrors = []error{
	service.ErrInvalidGuestList,
	service.ErrInvalidRSVPStatus,
	service.ErrInvalidGiftOption,
	service.ErrGiftItemRequired,
	service.ErrInvalidItem,
	service.ErrInvalidEvent,
	service.ErrInvalidUser,
}

var notFoundErrors = []error{
	service.ErrEventNotFound,
	service.ErrGuestNotFound,
	service.ErrItemNotFound,
	service.ErrUserNotFound,
}

func matchesAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// writeServiceError maps a service error to its HTTP response. Anything
// unrecognised is logged and reported as a server error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case matchesAny(err, validationErrors):
		invytesdk.NewAPIError(http.StatusBadRequest, invytesdk.ErrorCodeInvalidRequest, err.Error()).WriteError(w)
	case matchesAny(err, notFoundErrors):
		invytesdk.NewAPIError(http.StatusNotFound, invytesdk.ErrorCodeNotFound, err.Error()).WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		invytesdk.ErrServerError.WriteError(w)
	}
}

// caller returns the authenticated user's id and phone number.
func caller(w http.ResponseWriter, r *http.Request) (userID, phone string, ok bool) {
	ctx := r.Context()
	userID, okID := httpx.UserIDFromContext(ctx)
	phone, okPhone := httpx.PhoneFromContext(ctx)
	if !okID || !okPhone {
		invytesdk.ErrUnauthenticated.WriteError(w)
		return "", "", false
	}
	return userID, phone, true
}

// pathID reads the {id} path value. Ids are ULIDs, so anything else cannot
// name a row and is reported as not found without a store lookup.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		invytesdk.ErrNotFound.WriteError(w)
		return "", false
	}
	return id.String(), true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(r, v); err != nil {
		slogx.FromContext(r.Context()).Debug("invalid request body", slog.Any("error", err))
		invytesdk.ErrInvalidBody.WriteError(w)
		return false
	}
	return true
}
