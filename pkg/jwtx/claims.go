package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultIdentityTTL is how long an identity token minted by the CLI lives.
const DefaultIdentityTTL = 24 * time.Hour

// Claims identify the calling user. The subject is the user ID and the phone
// number is the external identity guests are invited by.
type Claims struct {
	jwt.RegisteredClaims

	// PhoneNumber of the authenticated user, matched against event rosters.
	PhoneNumber string `json:"phone_number"`

	// Name is the display name, if the user has set one.
	Name string `json:"name,omitempty"`
}

// NewIdentityClaims builds claims for a user identified by id and phone number.
func NewIdentityClaims(
	userID, phoneNumber, name string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		PhoneNumber: phoneNumber,
		Name:        name,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}

	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}

	return ErrAudience
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}

// ValidateIdentity makes sure the token actually names somebody. A token
// without a phone number can't be matched to any roster.
func (c *Claims) ValidateIdentity() error {
	if strings.TrimSpace(c.Subject) == "" || strings.TrimSpace(c.PhoneNumber) == "" {
		return ErrInvalidClaim
	}
	return nil
}
