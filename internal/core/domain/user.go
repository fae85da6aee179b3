package domain

import "time"

// Role is the canonical, normalized role of an authenticated principal.
// Values are always upper-case and carry no scoping prefix; comparisons are
// therefore plain equality.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSupport  Role = "SUPPORT"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole maps a normalized role string to a known Role. Unknown values
// yield the empty Role: a principal whose token carries an unrecognized role
// simply has no role in this portal.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCustomer, RoleSupport, RoleAdmin:
		return Role(s)
	}
	return ""
}

// User is the normalized profile derived from a login response or from the
// bearer token's claims. Zero values mean "unknown": the token is the only
// required piece of a session, everything here is best-effort display data.
type User struct {
	UserID    int64      `json:"user_id,omitempty"`
	Username  string     `json:"username,omitempty"`
	Email     string     `json:"email,omitempty"`
	Role      Role       `json:"role,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// IsAdmin reports whether the user's normalized role is ADMIN.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
