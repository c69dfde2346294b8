package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyPhone  ctxKey = "phone_number"
	CtxKeyClaims ctxKey = "claims"
)

// UserIDFromContext returns the authenticated user's ID.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	return v, ok && v != ""
}

// PhoneFromContext returns the authenticated user's phone number.
func PhoneFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyPhone).(string)
	return v, ok && v != ""
}
