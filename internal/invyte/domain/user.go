package domain

import "time"

// User is an account identified by phone number. Name stays nil until the
// user sets it.
type User struct {
	ID          string
	PhoneNumber string
	Name        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
