package domain

import "testing"

func TestInvoiceOutstanding(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{"paid", false},
		{"Paid", false},
		{"PAID", false},
		{"pending", true},
		{"overdue", true},
		{"", true},
	}
	for _, tc := range cases {
		inv := Invoice{Status: tc.status}
		if got := inv.Outstanding(); got != tc.want {
			t.Errorf("Outstanding(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestFilterOutstanding(t *testing.T) {
	invoices := []Invoice{
		{InvoiceID: 1, Status: "Paid"},
		{InvoiceID: 2, Status: "pending"},
		{InvoiceID: 3, Status: "overdue"},
	}

	got := FilterOutstanding(invoices)
	if len(got) != 2 || got[0].InvoiceID != 2 || got[1].InvoiceID != 3 {
		t.Fatalf("FilterOutstanding = %+v, want invoices 2 and 3 in order", got)
	}

	if got := FilterOutstanding(nil); got == nil || len(got) != 0 {
		t.Fatalf("FilterOutstanding(nil) = %v, want empty non-nil slice", got)
	}
}

func TestParseRole(t *testing.T) {
	if got := ParseRole("ADMIN"); got != RoleAdmin {
		t.Fatalf("ParseRole(ADMIN) = %q", got)
	}
	if got := ParseRole("admin"); got != "" {
		t.Fatalf("ParseRole is exact-match only, got %q", got)
	}
	if got := ParseRole("SUPERUSER"); got != "" {
		t.Fatalf("unknown role = %q, want empty", got)
	}
}

func TestUserIsAdmin(t *testing.T) {
	if (&User{Role: RoleCustomer}).IsAdmin() {
		t.Fatal("customer is not admin")
	}
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Fatal("admin should report admin")
	}
	var nilUser *User
	if nilUser.IsAdmin() {
		t.Fatal("nil user is not admin")
	}
}
