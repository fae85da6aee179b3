package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abc-telecom/billing-portal/internal/core/domain"
	"github.com/abc-telecom/billing-portal/internal/core/ports"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL}, zerolog.Nop())
}

func TestLogin_Success(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["username"] != "alice" || body["password"] != "secret" {
			t.Fatalf("unexpected credentials: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"accessToken": "tok-1",
			"user": map[string]any{
				"userId":   1,
				"username": "alice",
				"role":     "customer",
			},
		})
	})

	result, err := client.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token != "tok-1" {
		t.Fatalf("token = %q, want tok-1", result.Token)
	}
	if result.User == nil || result.User.Role != domain.RoleCustomer {
		t.Fatalf("user = %+v", result.User)
	}
}

func TestLogin_NormalizesAuthorityStyleRoles(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.Role
	}{
		{"ROLE_CUSTOMER", domain.RoleCustomer},
		{"ROLE_ADMIN", domain.RoleAdmin},
		{"role_customer", domain.RoleCustomer},
	}
	for _, tc := range cases {
		client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"accessToken": "tok-1",
				"user": map[string]any{
					"userId":   1,
					"username": "alice",
					"role":     tc.raw,
				},
			})
		})

		result, err := client.Login(context.Background(), "alice", "secret")
		if err != nil {
			t.Fatalf("role %q: login failed: %v", tc.raw, err)
		}
		if result.User == nil || result.User.Role != tc.want {
			t.Fatalf("role %q: user = %+v, want role %q", tc.raw, result.User, tc.want)
		}
	}
}

func TestLogin_RejectionsMapToInvalidCredentials(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound} {
		client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"error": "bad credentials"})
		})

		if _, err := client.Login(context.Background(), "alice", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("status %d: expected ErrInvalidCredentials, got %v", status, err)
		}
	}
}

func TestLogin_MissingTokenIsRejected(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"accessToken": ""})
	})

	if _, err := client.Login(context.Background(), "alice", "secret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/register" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]int64{"user_id": 31})
	})

	id, err := client.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "longenough",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if id != 31 {
		t.Fatalf("user id = %d, want 31", id)
	}
}

func TestCurrentCustomer_AttachesBearerToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Fatalf("Authorization = %q, want Bearer tok-1", got)
		}
		if r.URL.Path != "/api/customers/me" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(domain.Customer{CustomerID: 10, FullName: "Alice"})
	})

	customer, err := client.CurrentCustomer(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if customer.CustomerID != 10 {
		t.Fatalf("customer = %+v", customer)
	}
}

func TestCurrentCustomer_NotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.CurrentCustomer(context.Background(), "tok-1")
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestDo_ServerErrorWrapsUpstream(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
	})

	_, err := client.Services(context.Background(), "tok-1", 10)
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if got := statusCode(err); got != http.StatusInternalServerError {
		t.Fatalf("statusCode = %d, want 500", got)
	}
}

func TestDo_UnreachableHostWrapsUpstream(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, zerolog.Nop())

	_, err := client.Invoices(context.Background(), "tok-1", 10)
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	// No HTTP exchange happened, so there is no status to report.
	if got := statusCode(err); got != 0 {
		t.Fatalf("statusCode = %d, want 0", got)
	}
}

func TestCreatePayment_SendsBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/invoices/5/payments" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("Content-Type = %q", ct)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["payment_method"] != "card" {
			t.Fatalf("payment_method = %v", body["payment_method"])
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Payment{PaymentID: 3, InvoiceID: 5, Amount: 19.99})
	})

	payment, err := client.CreatePayment(context.Background(), "tok-1", 5, ports.PaymentInput{
		Amount:        19.99,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if payment.PaymentID != 3 {
		t.Fatalf("payment = %+v", payment)
	}
}

func TestPing(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		// Any answer at all counts as reachable.
		w.WriteHeader(http.StatusNotFound)
	})
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}

	down := NewClient(Config{BaseURL: "http://127.0.0.1:1"}, zerolog.Nop())
	if err := down.Ping(context.Background()); err == nil {
		t.Fatal("expected ping failure for unreachable host")
	}
}
