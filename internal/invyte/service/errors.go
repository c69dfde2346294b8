package service

import "errors"

// Validation errors. Handlers map these to 400.
var (
	ErrInvalidGuestList  = errors.New("every guest needs a name and phone number")
	ErrInvalidRSVPStatus = errors.New("rsvp status must be yes, no or maybe")
	ErrInvalidGiftOption = errors.New("gift option must be BYOG, no gift, gift card or gift")
	ErrGiftItemRequired  = errors.New("gift option requires at least one wishlist item")
	ErrInvalidItem       = errors.New("wishlist item name is required")
	ErrInvalidEvent      = errors.New("invalid event")
	ErrInvalidUser       = errors.New("invalid user")
)

// Lookup errors. Handlers map these to 404.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrGuestNotFound = errors.New("guest not found")
	ErrItemNotFound  = errors.New("wishlist item not found")
	ErrUserNotFound  = errors.New("user not found")
)
