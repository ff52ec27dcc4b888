package services

import (
	"github.com/google/uuid"
)

// CartSessionCookie is the single persistent-storage key holding the durable
// anonymous shopper identifier. Same key name the web client used.
const CartSessionCookie = "cartId"

// CartSessionMaxAge keeps the cookie for a year; the token itself never
// expires server-side.
const CartSessionMaxAge = 365 * 24 * 60 * 60

// EnsureSessionID returns a durable session token for the shopper. An
// existing well-formed token is returned unchanged (never overwritten); a
// missing or malformed one is replaced with a fresh random UUID. The second
// return reports whether a new token was minted and must be persisted.
func EnsureSessionID(existing string) (string, bool) {
	if existing != "" {
		if _, err := uuid.Parse(existing); err == nil {
			return existing, false
		}
	}
	return uuid.NewString(), true
}
