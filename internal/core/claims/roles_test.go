package claims

import (
	"reflect"
	"testing"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
)

func TestRoles_SingleStringClaim(t *testing.T) {
	c := Claims{"role": "ROLE_ADMIN"}
	want := []string{"ADMIN"}
	if got := Roles(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("Roles = %v, want %v", got, want)
	}
}

func TestRoles_ArrayClaim(t *testing.T) {
	// Arrays arrive as []any after JSON decoding.
	c := Claims{"roles": []any{"ROLE_ADMIN", "support"}}
	want := []string{"ADMIN", "SUPPORT"}
	if got := Roles(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("Roles = %v, want %v", got, want)
	}
}

func TestRoles_AuthoritiesObjects(t *testing.T) {
	c := Claims{"authorities": []any{
		map[string]any{"authority": "ROLE_CUSTOMER"},
		`{"authority":"ROLE_SUPPORT"}`,
	}}
	want := []string{"CUSTOMER", "SUPPORT"}
	if got := Roles(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("Roles = %v, want %v", got, want)
	}
}

func TestRoles_SerializedRoleObject(t *testing.T) {
	c := Claims{"role": `{"role":"role_admin"}`}
	want := []string{"ADMIN"}
	if got := Roles(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("Roles = %v, want %v", got, want)
	}
}

func TestRoles_PrefixStripIsCaseInsensitive(t *testing.T) {
	c := Claims{"roles": []any{"Role_Admin", "role_support", "ROLE_CUSTOMER"}}
	want := []string{"ADMIN", "SUPPORT", "CUSTOMER"}
	if got := Roles(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("Roles = %v, want %v", got, want)
	}
}

func TestRoles_SourcePrecedenceAndDedupe(t *testing.T) {
	// "role" entries come before "roles" entries; duplicates collapse to
	// their first occurrence.
	c := Claims{
		"role":  "admin",
		"roles": []any{"ROLE_ADMIN", "SUPPORT", "support"},
	}
	want := []string{"ADMIN", "SUPPORT"}
	if got := Roles(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("Roles = %v, want %v", got, want)
	}
}

func TestRoles_IgnoresNonStringEntries(t *testing.T) {
	c := Claims{"roles": []any{float64(7), true, "ROLE_ADMIN"}}
	want := []string{"ADMIN"}
	if got := Roles(c); !reflect.DeepEqual(got, want) {
		t.Fatalf("Roles = %v, want %v", got, want)
	}
}

func TestRoles_Empty(t *testing.T) {
	if got := Roles(nil); len(got) != 0 {
		t.Fatalf("Roles(nil) = %v, want empty", got)
	}
	if got := Roles(Claims{"sub": "1"}); len(got) != 0 {
		t.Fatalf("Roles without role claims = %v, want empty", got)
	}
	if got := Roles(Claims{"role": "   "}); len(got) != 0 {
		t.Fatalf("whitespace role = %v, want empty", got)
	}
}

func TestPrimaryRole(t *testing.T) {
	c := Claims{"roles": []any{"ROLE_SUPPORT", "ROLE_ADMIN"}}
	if got := PrimaryRole(c); got != "SUPPORT" {
		t.Fatalf("PrimaryRole = %q, want SUPPORT", got)
	}
	if got := PrimaryRole(nil); got != "" {
		t.Fatalf("PrimaryRole(nil) = %q, want empty", got)
	}
}

func TestRole_MapsOntoKnownSet(t *testing.T) {
	if got := Role(Claims{"role": "ROLE_ADMIN"}); got != domain.RoleAdmin {
		t.Fatalf("Role = %q, want %q", got, domain.RoleAdmin)
	}
	// Unknown roles resolve to the empty Role, not an error.
	if got := Role(Claims{"role": "SUPERUSER"}); got != domain.Role("") {
		t.Fatalf("unknown role = %q, want empty", got)
	}
}

func TestHasRole(t *testing.T) {
	c := Claims{"roles": []any{"ROLE_ADMIN", "SUPPORT"}}

	if !HasRole(c, "admin") {
		t.Fatal("expected admin membership, case-insensitively")
	}
	if !HasRole(c, " SUPPORT ") {
		t.Fatal("expected support membership with surrounding whitespace")
	}
	if HasRole(c, "CUSTOMER") {
		t.Fatal("unexpected customer membership")
	}
	if HasRole(c, "") {
		t.Fatal("empty wanted role must never match")
	}
	if HasRole(nil, "ADMIN") {
		t.Fatal("nil claims must never match")
	}
}
