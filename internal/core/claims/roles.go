package claims

import (
	"encoding/json"
	"strings"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
)

// Tokens have carried role data under three different claim names depending
// on which backend issued them. The order is a precedence list: entries from
// an earlier source come before entries from a later one.
var roleSources = []string{"role", "roles", "authorities"}

const rolePrefix = "ROLE_"

// Roles collects every role-like claim, normalized and de-duplicated with
// first-seen order preserved. Normalization: unwrap serialized
// {"role":...}/{"authority":...} objects, strip a leading case-insensitive
// ROLE_ prefix, upper-case. Returns an empty slice for nil or role-less
// claims.
func Roles(c Claims) []string {
	if c == nil {
		return nil
	}

	var flat []string
	for _, source := range roleSources {
		flat = append(flat, flatten(c[source])...)
	}

	seen := make(map[string]struct{}, len(flat))
	normalized := make([]string, 0, len(flat))
	for _, entry := range flat {
		role := normalizeRole(entry)
		if role == "" {
			continue
		}
		if _, dup := seen[role]; dup {
			continue
		}
		seen[role] = struct{}{}
		normalized = append(normalized, role)
	}
	return normalized
}

// PrimaryRole returns the first normalized role, or "" when there is none.
func PrimaryRole(c Claims) string {
	roles := Roles(c)
	if len(roles) == 0 {
		return ""
	}
	return roles[0]
}

// Role maps the primary role onto the portal's fixed role set. Roles outside
// the set resolve to the empty Role.
func Role(c Claims) domain.Role {
	return domain.ParseRole(PrimaryRole(c))
}

// HasRole reports whether wanted (compared case-insensitively) appears in
// the normalized role set.
func HasRole(c Claims, wanted string) bool {
	wanted = strings.ToUpper(strings.TrimSpace(wanted))
	if wanted == "" {
		return false
	}
	for _, role := range Roles(c) {
		if role == wanted {
			return true
		}
	}
	return false
}

// flatten turns a claim value into individual string entries. Arrays are
// expanded one level; scalars are stringified; anything else is skipped.
func flatten(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case map[string]any:
		// An authority object that was never serialized.
		if s := innerRole(v); s != "" {
			return []string{s}
		}
		return nil
	default:
		return nil
	}
}

// normalizeRole canonicalizes a single role entry.
func normalizeRole(entry string) string {
	s := strings.TrimSpace(entry)

	// Entries sometimes arrive as serialized objects like {"authority":
	// "ROLE_ADMIN"}; unwrap the inner value when they do.
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		var obj map[string]any
		if err := json.Unmarshal([]byte(s), &obj); err == nil {
			if inner := innerRole(obj); inner != "" {
				s = inner
			}
		}
	}

	if len(s) >= len(rolePrefix) && strings.EqualFold(s[:len(rolePrefix)], rolePrefix) {
		s = s[len(rolePrefix):]
	}
	return strings.ToUpper(s)
}

func innerRole(obj map[string]any) string {
	if s, ok := obj["role"].(string); ok && s != "" {
		return s
	}
	if s, ok := obj["authority"].(string); ok && s != "" {
		return s
	}
	return ""
}
