// Package claims inspects the payload of a bearer token without verifying
// its signature. Verification belongs to the billing API; anything decoded
// here is a display and authorization *hint* only, never a security boundary.
// The API independently re-authorizes every call carrying the token.
package claims

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the loosely-typed payload of a bearer token. No key or value
// shape is guaranteed.
type Claims map[string]any

// Decode extracts the claims from the middle segment of a three-segment
// bearer token. Any structural failure (wrong segment count, invalid
// base64url, invalid JSON) yields nil — callers get "no claims", never an
// error, so a malformed token can never take a page down.
func Decode(token string) Claims {
	if token == "" {
		return nil
	}

	parsed := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, parsed); err != nil {
		return nil
	}
	return Claims(parsed)
}

// String returns the claim under key as a string, or "" when absent or not
// a string.
func (c Claims) String(key string) string {
	if c == nil {
		return ""
	}
	s, _ := c[key].(string)
	return s
}
