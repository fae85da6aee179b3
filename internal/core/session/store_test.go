package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// ---------------------------------------------------------------------------
// In-memory stub persister
// ---------------------------------------------------------------------------

type stubPersister struct {
	tokens  map[string]string
	saveErr error
}

func newStubPersister() *stubPersister {
	return &stubPersister{tokens: make(map[string]string)}
}

func (p *stubPersister) Save(_ context.Context, sessionID, token string) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.tokens[sessionID] = token
	return nil
}

func (p *stubPersister) Load(_ context.Context, sessionID string) (string, error) {
	return p.tokens[sessionID], nil
}

func (p *stubPersister) Delete(_ context.Context, sessionID string) error {
	delete(p.tokens, sessionID)
	return nil
}

func TestStore_SetTokenPersists(t *testing.T) {
	persister := newStubPersister()
	store := NewStore("s1", persister, zerolog.Nop())

	store.SetToken(context.Background(), "tok-1")

	if got := store.Token(); got != "tok-1" {
		t.Fatalf("Token = %q, want tok-1", got)
	}
	if got := persister.tokens["s1"]; got != "tok-1" {
		t.Fatalf("persisted token = %q, want tok-1", got)
	}
}

func TestStore_EmptyTokenClearsUserAndSkipsPersistence(t *testing.T) {
	persister := newStubPersister()
	store := NewStore("s1", persister, zerolog.Nop())

	store.SetToken(context.Background(), "tok-1")
	store.SetUser(testUser("alice"))
	store.SetToken(context.Background(), "")

	snap := store.Snapshot()
	if snap.Token != "" {
		t.Fatalf("Token = %q, want empty", snap.Token)
	}
	if snap.User != nil {
		t.Fatal("user must be cleared together with the token")
	}
	// The empty value is never written over the previously saved token.
	if got := persister.tokens["s1"]; got != "tok-1" {
		t.Fatalf("persisted token = %q, want tok-1 untouched", got)
	}
}

func TestStore_SetUserWithoutTokenIsIgnored(t *testing.T) {
	store := NewStore("s1", nil, zerolog.Nop())

	store.SetUser(testUser("alice"))

	if store.User() != nil {
		t.Fatal("a user must never exist without a token")
	}
}

func TestStore_PersistenceFailureDoesNotBlockSession(t *testing.T) {
	persister := newStubPersister()
	persister.saveErr = errors.New("redis down")
	store := NewStore("s1", persister, zerolog.Nop())

	store.SetToken(context.Background(), "tok-1")

	// The in-memory session still works even though nothing was saved.
	if got := store.Token(); got != "tok-1" {
		t.Fatalf("Token = %q, want tok-1", got)
	}
	if len(persister.tokens) != 0 {
		t.Fatal("nothing should have been persisted")
	}
}

func TestStore_Logout(t *testing.T) {
	persister := newStubPersister()
	store := NewStore("s1", persister, zerolog.Nop())

	store.SetToken(context.Background(), "tok-1")
	store.SetUser(testUser("alice"))
	store.Logout(context.Background())

	snap := store.Snapshot()
	if snap.Token != "" || snap.User != nil {
		t.Fatalf("session not cleared: %+v", snap)
	}
	if _, ok := persister.tokens["s1"]; ok {
		t.Fatal("persisted token should be removed on logout")
	}
	if snap.IsAuthenticated() {
		t.Fatal("logged-out session must not report authenticated")
	}
}

func TestStore_SubscribersSeeEveryMutation(t *testing.T) {
	store := NewStore("s1", nil, zerolog.Nop())

	var snaps []Snapshot
	store.Subscribe(func(s Snapshot) {
		snaps = append(snaps, s)
	})

	ctx := context.Background()
	store.SetToken(ctx, "tok-1")
	store.SetUser(testUser("alice"))
	store.Logout(ctx)

	if len(snaps) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(snaps))
	}
	if snaps[0].Token != "tok-1" || snaps[0].User != nil {
		t.Fatalf("first snapshot: %+v", snaps[0])
	}
	if snaps[1].User == nil || snaps[1].User.Username != "alice" {
		t.Fatalf("second snapshot: %+v", snaps[1])
	}
	if snaps[2].Token != "" || snaps[2].User != nil {
		t.Fatalf("third snapshot: %+v", snaps[2])
	}
}

func TestStore_RestoreNeverClobbersLiveToken(t *testing.T) {
	store := NewStore("s1", nil, zerolog.Nop())

	store.SetToken(context.Background(), "fresh")
	store.SetUser(testUser("alice"))
	store.restore("stale-persisted")

	snap := store.Snapshot()
	if snap.Token != "fresh" {
		t.Fatalf("Token = %q, want the live token to win over persisted state", snap.Token)
	}
	if snap.User == nil || snap.User.Username != "alice" {
		t.Fatalf("user must stay paired with its token: %+v", snap.User)
	}
}

// A listener mutating the store from inside its callback must not deadlock;
// the hydrator relies on this.
func TestStore_ReentrantListener(t *testing.T) {
	store := NewStore("s1", nil, zerolog.Nop())

	store.Subscribe(func(s Snapshot) {
		if s.Token != "" && s.User == nil {
			store.SetUser(testUser("derived"))
		}
	})

	store.SetToken(context.Background(), "tok-1")

	user := store.User()
	if user == nil || user.Username != "derived" {
		t.Fatalf("re-entrant SetUser did not apply: %+v", user)
	}
}
